package cli

import (
	"github.com/alexanderramin/intake/internal/config"
	"github.com/alexanderramin/intake/internal/seed"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the services and collaborators used by CLI commands.
type App struct {
	Requests    service.RequestService
	Projects    service.ProjectService
	Tickets     service.TicketService
	Conversions service.ConversionService
	Seeder      *seed.Seeder

	Logger *zap.Logger
	Server config.ServerConfig

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "intake" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "intake",
		Short:         "Intake requests, triage them, and track the resulting tickets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRequestCmd(app),
		newProjectCmd(app),
		newTicketCmd(app),
		newSeedCmd(app),
		newServeCmd(app),
	)

	return root
}
