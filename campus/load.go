package campus

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusplanner/building"
)

// document is the on-disk layout of a campus data file:
//
//	buildings:
//	  - {id: 101, name: Admin, details: Administrative block}
//	roads:
//	  - {from: 101, to: 102, distance: 5}
type document struct {
	Buildings []building.Building `yaml:"buildings" validate:"required,min=1,dive"`
	Roads     []Road              `yaml:"roads" validate:"dive"`
}

// Load decodes a YAML campus document from r, validates it and builds the
// Campus. Unknown keys are rejected.
func Load(r io.Reader, opts ...Option) (*Campus, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadData, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBuilding, err)
	}

	return build(doc.Buildings, doc.Roads, opts...)
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*Campus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("campus: open data file: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}
