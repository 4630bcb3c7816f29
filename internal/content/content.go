// Package content loads the portfolio document shown by the desktop's
// applications. A default document is compiled in; a YAML file on disk can
// replace it.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// ErrInvalidDocument is returned when a document is missing required fields
var ErrInvalidDocument = errors.New("invalid portfolio document")

// Document is the whole portfolio
type Document struct {
	Name       string       `yaml:"name"`
	Tagline    string       `yaml:"tagline"`
	URL        string       `yaml:"url"`
	Email      string       `yaml:"email"`
	About      string       `yaml:"about"`
	Interests  []string     `yaml:"interests"`
	Projects   []Project    `yaml:"projects"`
	Experience []Role       `yaml:"experience"`
	Skills     []SkillGroup `yaml:"skills"`
	Resume     string       `yaml:"resume"`
	Contact    []Link       `yaml:"contact"`
}

// Project is one portfolio project
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url"`
}

// Role is one position held
type Role struct {
	Title   string `yaml:"title"`
	Company string `yaml:"company"`
	Period  string `yaml:"period"`
	Summary string `yaml:"summary"`
}

// SkillGroup is a category of skills
type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Link is a labelled contact address
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the compiled-in document
func Default() *Document {
	doc, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded portfolio document: %v", err))
	}
	return doc
}

// Parse decodes and validates a YAML document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads the document at path, or returns the default when path is empty
func Load(path string) (*Document, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio document: %w", err)
	}
	return Parse(data)
}

// Validate checks the fields every application relies on
func (d *Document) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDocument)
	}
	for i, p := range d.Projects {
		if p.Name == "" {
			return fmt.Errorf("%w: project %d has no name", ErrInvalidDocument, i)
		}
	}
	return nil
}
