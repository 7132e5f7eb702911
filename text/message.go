package text

import "github.com/Tnze/go-mc/chat"

// Message converts c to a go-mc chat message, for use with go-mc packets
// and language tables. Styles, text, translate keys with their arguments
// and children carry over; unset flags become false. Score, selector and
// keybind content, which go-mc cannot resolve offline, becomes literal text.
func (c Component) Message() chat.Message {
	m := chat.Message{
		Text:          c.Text,
		Bold:          c.Style.Bold.Bool(),
		Italic:        c.Style.Italic.Bool(),
		UnderLined:    c.Style.Underlined.Bool(),
		StrikeThrough: c.Style.Strikethrough.Bool(),
		Obfuscated:    c.Style.Obfuscated.Bool(),
		Font:          c.Style.Font,
		Color:         c.Style.Color,
	}
	switch c.Kind() {
	case TypeTranslatable:
		m.Translate = c.Translate
		for i := range c.With {
			m.With = append(m.With, c.With[i].Message())
		}
	case TypeKeybind:
		m.Text = c.Keybind
	case TypeSelector:
		m.Text = c.Selector
	case TypeScore:
		m.Text = c.ScoreName + ":" + c.ScoreObjective
	}
	for i := range c.Extra {
		m.Extra = append(m.Extra, c.Extra[i].Message())
	}
	return m
}

// PlainText returns the unformatted text of c and its children.
func (c Component) PlainText() string {
	return c.Message().ClearString()
}
