package book

import (
	"fmt"

	"github.com/mj41/mcbook/text"
)

// Generation is the copy tier of a written book. The zero value leaves the
// tag out of the item data.
type Generation int8

const (
	GenerationUnset Generation = iota
	Original
	CopyOfOriginal
	CopyOfCopy
	Tattered
)

var generationNames = []string{"", "original", "copy_of_original", "copy_of_copy", "tattered"}

// ParseGeneration maps a generation name to its value. The empty string
// is GenerationUnset.
func ParseGeneration(s string) (Generation, error) {
	for i, name := range generationNames {
		if name == s {
			return Generation(i), nil
		}
	}
	return GenerationUnset, fmt.Errorf("generation %q: %w", s, text.ErrInvalidEnumValue)
}

// Tag is the value stored in the generation NBT tag, 0 for an original.
func (g Generation) Tag() int { return int(g) - 1 }

func (g Generation) String() string {
	if g < 0 || int(g) >= len(generationNames) {
		return fmt.Sprintf("Generation(%d)", g)
	}
	return generationNames[g]
}
