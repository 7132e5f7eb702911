package text

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect fixes the textual details of the encoding: separators, boolean
// literals and the key of the underline flag.
type Dialect struct {
	Name          string
	Comma         string
	Colon         string
	True          string
	False         string
	UnderlinedKey string
}

var (
	// Legacy reproduces the output of the original book generator,
	// including its "True" literals and "underline" key.
	Legacy = Dialect{
		Name:          "legacy",
		Comma:         ", ",
		Colon:         ": ",
		True:          "True",
		False:         "False",
		UnderlinedKey: "underline",
	}
	// Strict is compact JSON as parsed by the 1.20.4 client.
	Strict = Dialect{
		Name:          "strict",
		Comma:         ",",
		Colon:         ":",
		True:          "true",
		False:         "false",
		UnderlinedKey: "underlined",
	}
)

// ParseDialect looks a dialect up by name.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case Legacy.Name:
		return Legacy, nil
	case Strict.Name:
		return Strict, nil
	}
	return Dialect{}, fmt.Errorf("dialect %q: %w", name, ErrInvalidEnumValue)
}

type field struct {
	key   string
	value any
}

// object keeps insertion order so output is deterministic.
type object []field

type array []any

// Encode returns the component in dialect d.
func (c Component) Encode(d Dialect) string {
	var sb strings.Builder
	d.write(&sb, c.object(d))
	return sb.String()
}

// MarshalJSON encodes c in the Strict dialect.
func (c Component) MarshalJSON() ([]byte, error) {
	return []byte(c.Encode(Strict)), nil
}

// Array encodes pre-encoded elements as an array literal.
func (d Dialect) Array(elems ...string) string {
	return "[" + strings.Join(elems, d.Comma) + "]"
}

func (c Component) object(d Dialect) object {
	var o object
	if c.Style.Color != "" {
		o = append(o, field{"color", c.Style.Color})
	}
	if c.HoverEvent != nil {
		o = append(o, field{"hoverEvent", c.HoverEvent.object(d)})
	}
	if c.ClickEvent != nil {
		o = append(o, field{"clickEvent", c.ClickEvent.object()})
	}
	o = append(o, c.Style.fields(d)...)

	kind := c.Kind()
	switch kind {
	case TypeText:
		o = append(o, field{"text", c.Text})
	case TypeTranslatable:
		o = append(o, field{"translate", c.Translate})
		if c.Fallback != "" {
			o = append(o, field{"fallback", c.Fallback})
		}
		if len(c.With) > 0 {
			o = append(o, field{"with", components(c.With, d)})
		}
	case TypeScore:
		o = append(o, field{"score", object{
			{"name", c.ScoreName},
			{"objective", c.ScoreObjective},
		}})
	case TypeSelector:
		o = append(o, field{"selector", c.Selector})
		if c.Separator != nil {
			o = append(o, field{"separator", c.Separator.object(d)})
		}
	case TypeKeybind:
		o = append(o, field{"keybind", c.Keybind})
	}
	o = append(o, field{"type", string(kind)})

	if len(c.Extra) > 0 {
		o = append(o, field{"extra", components(c.Extra, d)})
	}
	return o
}

func components(cs []Component, d Dialect) array {
	a := make(array, len(cs))
	for i := range cs {
		a[i] = cs[i].object(d)
	}
	return a
}

func (d Dialect) write(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case string:
		sb.WriteString(Quote(v))
	case bool:
		if v {
			sb.WriteString(d.True)
		} else {
			sb.WriteString(d.False)
		}
	case int:
		sb.WriteString(strconv.Itoa(v))
	case object:
		sb.WriteByte('{')
		for i, f := range v {
			if i > 0 {
				sb.WriteString(d.Comma)
			}
			sb.WriteString(Quote(f.key))
			sb.WriteString(d.Colon)
			d.write(sb, f.value)
		}
		sb.WriteByte('}')
	case array:
		sb.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				sb.WriteString(d.Comma)
			}
			d.write(sb, e)
		}
		sb.WriteByte(']')
	default:
		panic(fmt.Sprintf("text: cannot encode %T", v))
	}
}
