// Package loader reads book descriptions from YAML.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mj41/mcbook/book"
	"github.com/mj41/mcbook/text"
)

// Document is the YAML form of a book.
type Document struct {
	Author     string        `yaml:"author"`
	Title      string        `yaml:"title"`
	Generation string        `yaml:"generation"`
	Pages      [][]Component `yaml:"pages"`
}

// Component is the YAML form of a text component. Exactly one content key
// (text, translate, score, selector, keybind) selects the kind.
type Component struct {
	Text      *string     `yaml:"text"`
	Translate string      `yaml:"translate"`
	Fallback  string      `yaml:"fallback"`
	With      []Component `yaml:"with"`
	Score     *Score      `yaml:"score"`
	Selector  string      `yaml:"selector"`
	Separator *Component  `yaml:"separator"`
	Keybind   string      `yaml:"keybind"`

	Color         string `yaml:"color"`
	Font          string `yaml:"font"`
	Bold          *bool  `yaml:"bold"`
	Italic        *bool  `yaml:"italic"`
	Underlined    *bool  `yaml:"underlined"`
	Strikethrough *bool  `yaml:"strikethrough"`
	Obfuscated    *bool  `yaml:"obfuscated"`

	Click *Click      `yaml:"click"`
	Hover *Hover      `yaml:"hover"`
	Extra []Component `yaml:"extra"`
}

// Score is the objective lookup of a score component.
type Score struct {
	Name      string `yaml:"name"`
	Objective string `yaml:"objective"`
}

// Click is a click event; Action is a wire tag such as open_url.
type Click struct {
	Action string `yaml:"action"`
	Value  string `yaml:"value"`
}

// Hover holds one of text, item or entity.
type Hover struct {
	Text   *Component `yaml:"text"`
	Item   *Item      `yaml:"item"`
	Entity *Entity    `yaml:"entity"`
}

// Item is the payload of a show_item hover.
type Item struct {
	ID    string `yaml:"id"`
	Count int    `yaml:"count"`
	Tag   string `yaml:"tag"`
}

// Entity is the payload of a show_entity hover.
type Entity struct {
	Type string     `yaml:"type"`
	UUID string     `yaml:"uuid"`
	Name *Component `yaml:"name"`
}

// LoadFile reads and builds the book at path.
func LoadFile(path string) (*book.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open book description")
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return b, nil
}

// Load decodes a YAML document from r and builds the book.
func Load(r io.Reader) (*book.Book, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	return doc.Build()
}

// Build turns the document into a book, failing on the first invalid
// field.
func (d Document) Build() (*book.Book, error) {
	gen, err := book.ParseGeneration(d.Generation)
	if err != nil {
		return nil, errors.Wrap(err, "generation")
	}
	b := book.New(d.Author, d.Title)
	b.Generation = gen

	for i, page := range d.Pages {
		var p book.Page
		for j := range page {
			c, err := page[j].Build()
			if err != nil {
				return nil, errors.Wrapf(err, "pages[%d][%d]", i, j)
			}
			p.Add(c)
		}
		b.AddPage(p)
	}
	return b, nil
}

// contentKeys lists the content keys present in c.
func (c Component) contentKeys() []string {
	var keys []string
	for _, k := range []struct {
		name string
		set  bool
	}{
		{"text", c.Text != nil},
		{"translate", c.Translate != ""},
		{"score", c.Score != nil},
		{"selector", c.Selector != ""},
		{"keybind", c.Keybind != ""},
	} {
		if k.set {
			keys = append(keys, k.name)
		}
	}
	return keys
}

// Build turns the YAML component into a text component.
func (c Component) Build() (text.Component, error) {
	if keys := c.contentKeys(); len(keys) > 1 {
		return text.Component{}, fmt.Errorf("multiple content keys %v: %w", keys, text.ErrInvalidEnumValue)
	}
	opts := []text.Option{
		text.WithStyle(text.Style{
			Bold:          text.FlagPtr(c.Bold),
			Italic:        text.FlagPtr(c.Italic),
			Underlined:    text.FlagPtr(c.Underlined),
			Strikethrough: text.FlagPtr(c.Strikethrough),
			Obfuscated:    text.FlagPtr(c.Obfuscated),
			Font:          c.Font,
			Color:         c.Color,
		}),
	}

	if c.Click != nil {
		action, err := text.ParseClickAction(c.Click.Action)
		if err != nil {
			return text.Component{}, errors.Wrap(err, "click")
		}
		opts = append(opts, text.WithClick(text.ClickEvent{Action: action, Value: c.Click.Value}))
	}
	if c.Hover != nil {
		ev, err := c.Hover.build()
		if err != nil {
			return text.Component{}, errors.Wrap(err, "hover")
		}
		opts = append(opts, text.WithHover(ev))
	}
	if len(c.Extra) > 0 {
		extra, err := buildAll(c.Extra, "extra")
		if err != nil {
			return text.Component{}, err
		}
		opts = append(opts, text.WithExtra(extra...))
	}

	switch {
	case c.Translate != "":
		with, err := buildAll(c.With, "with")
		if err != nil {
			return text.Component{}, err
		}
		return text.NewTranslatable(c.Translate, with, append(opts, text.WithFallback(c.Fallback))...)
	case c.Score != nil:
		return text.NewScore(c.Score.Name, c.Score.Objective, opts...)
	case c.Selector != "":
		var sep *text.Component
		if c.Separator != nil {
			s, err := c.Separator.Build()
			if err != nil {
				return text.Component{}, errors.Wrap(err, "separator")
			}
			sep = &s
		}
		return text.NewSelector(c.Selector, sep, opts...)
	case c.Keybind != "":
		return text.NewKeybind(c.Keybind, opts...)
	case c.Text != nil:
		return text.NewText(*c.Text, opts...)
	}
	return text.Component{}, fmt.Errorf("text: %w", text.ErrMissingRequiredField)
}

func (h Hover) build() (text.HoverEvent, error) {
	if n := len(lo.Filter([]bool{h.Text != nil, h.Item != nil, h.Entity != nil}, func(set bool, _ int) bool { return set })); n > 1 {
		return text.HoverEvent{}, fmt.Errorf("%d hover payloads, want one: %w", n, text.ErrInvalidEnumValue)
	}
	switch {
	case h.Text != nil:
		c, err := h.Text.Build()
		if err != nil {
			return text.HoverEvent{}, errors.Wrap(err, "text")
		}
		return text.NewShowText(c), nil
	case h.Item != nil:
		return text.NewShowItem(text.HoverItem{ID: h.Item.ID, Count: h.Item.Count, Tag: h.Item.Tag})
	case h.Entity != nil:
		ent := text.HoverEntity{Type: h.Entity.Type, UUID: h.Entity.UUID}
		if h.Entity.Name != nil {
			name, err := h.Entity.Name.Build()
			if err != nil {
				return text.HoverEvent{}, errors.Wrap(err, "entity name")
			}
			ent.Name = &name
		}
		return text.NewShowEntity(ent)
	}
	return text.HoverEvent{}, fmt.Errorf("contents: %w", text.ErrMissingRequiredField)
}

func buildAll(cs []Component, name string) ([]text.Component, error) {
	out := make([]text.Component, 0, len(cs))
	for i := range cs {
		c, err := cs[i].Build()
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", name, i)
		}
		out = append(out, c)
	}
	return out, nil
}
