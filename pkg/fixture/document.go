package fixture

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/utils"
)

// Document describes a full account graph
type Document struct {
	SalesReps []SalesRep `yaml:"sales_reps" validate:"dive"`
	// Segments are registered up front, before any account references them
	Segments []string  `yaml:"segments" validate:"dive,required"`
	Accounts []Account `yaml:"accounts" validate:"dive"`
}

type SalesRep struct {
	FirstName string `yaml:"first_name" validate:"required"`
	LastName  string `yaml:"last_name" validate:"required"`
}

// DisplayName is how accounts refer to the rep
func (r SalesRep) DisplayName() string {
	return r.FirstName + " " + r.LastName
}

// Account describes one account and its subtree. For children, omitting
// SalesRep or Segments inherits them from the parent.
type Account struct {
	Name           string    `yaml:"name" validate:"required"`
	SalesRep       string    `yaml:"sales_rep,omitempty"`
	Segments       []string  `yaml:"segments,omitempty" validate:"dive,required"`
	AddSegments    []string  `yaml:"add_segments,omitempty" validate:"dive,required"`
	RemoveSegments []string  `yaml:"remove_segments,omitempty" validate:"dive,required"`
	Children       []Account `yaml:"children,omitempty" validate:"dive"`
}

// Load reads and validates a document from disk
func Load(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fixture '%s'", path)
	}

	doc, err := Parse(ctx, data)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture '%s'", path)
	}
	return doc, nil
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(ctx context.Context, data []byte) (*Document, error) {
	_, span := tracing.StartSpan(ctx, "fixture.Parse")
	defer span.End()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("fixture is empty")
		}
		return nil, errors.Wrap(err, "failed to parse YAML")
	}

	if _, err := utils.Validate(doc); err != nil {
		return nil, errors.Wrap(err, "invalid fixture")
	}

	return &doc, nil
}
