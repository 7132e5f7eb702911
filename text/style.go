package text

import "fmt"

// Flag is a tri-state formatting switch. The zero value is unset and is
// never written to the output.
type Flag int8

const (
	FlagUnset Flag = iota
	FlagTrue
	FlagFalse
)

// FlagOf returns FlagTrue or FlagFalse.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// FlagPtr maps nil to FlagUnset.
func FlagPtr(b *bool) Flag {
	if b == nil {
		return FlagUnset
	}
	return FlagOf(*b)
}

// IsSet reports whether f was given a value.
func (f Flag) IsSet() bool { return f != FlagUnset }

// Bool returns the flag value; unset reads as false.
func (f Flag) Bool() bool { return f == FlagTrue }

// Style holds the formatting attributes of a component. Empty strings and
// unset flags are omitted when encoding.
type Style struct {
	Bold          Flag
	Italic        Flag
	Underlined    Flag
	Strikethrough Flag
	Obfuscated    Flag
	Font          string
	Color         string
}

// Valid reports whether f is one of the three defined states.
func (f Flag) Valid() bool { return f >= FlagUnset && f <= FlagFalse }

// Validate checks the flags and the color.
func (s Style) Validate() error {
	for _, f := range []Flag{s.Bold, s.Italic, s.Underlined, s.Strikethrough, s.Obfuscated} {
		if !f.Valid() {
			return fmt.Errorf("style flag %d: %w", f, ErrInvalidEnumValue)
		}
	}
	return ValidateColor(s.Color)
}

// IsZero reports whether no attribute is set.
func (s Style) IsZero() bool { return s == Style{} }

func (s Style) fields(d Dialect) object {
	var o object
	flags := []struct {
		key string
		f   Flag
	}{
		{"bold", s.Bold},
		{"italic", s.Italic},
		{d.UnderlinedKey, s.Underlined},
		{"strikethrough", s.Strikethrough},
		{"obfuscated", s.Obfuscated},
	}
	for _, fl := range flags {
		if fl.f.IsSet() {
			o = append(o, field{fl.key, fl.f.Bool()})
		}
	}
	if s.Font != "" {
		o = append(o, field{"font", s.Font})
	}
	return o
}
