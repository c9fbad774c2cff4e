// Package building defines the record stored in the campus indexes.
package building

import (
	"cmp"
	"fmt"
)

// Building is one campus building. Identity and ordering use ID only.
// The struct tags drive YAML decoding and validation in package campus.
type Building struct {
	ID      int    `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name" validate:"required,max=64"`
	Details string `yaml:"details" json:"details" validate:"max=256"`
}

// String renders "[ID] Name - Details".
func (b Building) String() string {
	return fmt.Sprintf("[%d] %s - %s", b.ID, b.Name, b.Details)
}

// Compare orders two buildings by ID: -1, 0 or +1.
func Compare(a, b Building) int {
	return cmp.Compare(a.ID, b.ID)
}

// IDs extracts the identifiers of bs in order.
func IDs(bs []Building) []int {
	out := make([]int, len(bs))
	for i, b := range bs {
		out[i] = b.ID
	}

	return out
}
