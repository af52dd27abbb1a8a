// Package seed loads a YAML dataset of requests, projects and tickets into an
// empty database. The demo dataset is embedded in the binary.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Dataset is the top-level YAML structure.
type Dataset struct {
	Requests []RequestSeed `yaml:"requests"`
	Projects []ProjectSeed `yaml:"projects"`
	Tickets  []TicketSeed  `yaml:"tickets"`
}

type RequestSeed struct {
	ID              string    `yaml:"id"`
	Title           string    `yaml:"title"`
	BusinessContext string    `yaml:"business_context"`
	ImpactArea      string    `yaml:"impact_area"`
	Urgency         string    `yaml:"urgency"`
	RequesterName   string    `yaml:"requester_name"`
	Status          string    `yaml:"status"`
	ReviewNote      *string   `yaml:"review_note,omitempty"`
	CreatedAt       time.Time `yaml:"created_at"`
	UpdatedAt       time.Time `yaml:"updated_at"`
}

type ProjectSeed struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description *string   `yaml:"description,omitempty"`
	Archived    bool      `yaml:"archived"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// TicketSeed describes a ticket. When IntakeRequestID is set, empty
// descriptive fields are copied from that request.
type TicketSeed struct {
	ID              string            `yaml:"id"`
	ProjectID       string            `yaml:"project_id"`
	IntakeRequestID *string           `yaml:"intake_request_id,omitempty"`
	Title           string            `yaml:"title"`
	BusinessContext string            `yaml:"business_context"`
	ImpactArea      string            `yaml:"impact_area"`
	Urgency         string            `yaml:"urgency"`
	Column          string            `yaml:"column"`
	Assignee        *string           `yaml:"assignee,omitempty"`
	Requirements    []RequirementSeed `yaml:"requirements"`
	CreatedAt       time.Time         `yaml:"created_at"`
	UpdatedAt       time.Time         `yaml:"updated_at"`
}

type RequirementSeed struct {
	ID        string `yaml:"id"`
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed"`
}

// Demo returns the embedded demo dataset.
func Demo() (*Dataset, error) {
	return Parse(demoYAML)
}

// LoadFile reads a dataset from a YAML file.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing seed dataset: %w", err)
	}
	return &ds, nil
}
