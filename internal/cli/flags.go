package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*enumFlag)(nil)

// enumFlag is a string flag restricted to a fixed set of values. It lets
// cobra reject a bad --urgency or --column before any service call.
type enumFlag struct {
	allowed []string
	value   string
}

func newEnumFlag[T ~string](allowed []T, def T) *enumFlag {
	f := &enumFlag{value: string(def)}
	for _, v := range allowed {
		f.allowed = append(f.allowed, string(v))
	}
	return f
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range f.allowed {
		if a == v {
			f.value = v
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(f.allowed, ", "))
}

func (f *enumFlag) Type() string { return "enum" }

// usage appends the allowed values to a flag description.
func (f *enumFlag) usage(desc string) string {
	return fmt.Sprintf("%s (%s)", desc, strings.Join(f.allowed, "|"))
}
