package book

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mj41/mcbook/text"
)

// Page is an ordered run of components shown as one book page. It holds
// its own copies of the components. Components built with the text
// constructors are valid; hand-built ones are checked by Validate and by
// Book.GiveCommand.
type Page struct {
	components []text.Component
}

// NewPage returns a page holding copies of components, in order.
func NewPage(components ...text.Component) Page {
	var p Page
	p.Add(components...)
	return p
}

// Add appends copies of components to p and returns p for chaining. The
// backing array is clipped first, so a Page copied by value never sees
// components added to the other copy.
func (p *Page) Add(components ...text.Component) *Page {
	if len(components) == 0 {
		return p
	}
	cloned := lo.Map(components, func(c text.Component, _ int) text.Component { return c.Clone() })
	p.components = append(slices.Clip(p.components), cloned...)
	return p
}

// Concat returns a new page with the components of p followed by those of
// other; neither operand changes.
func (p Page) Concat(other Page) Page {
	var out Page
	out.Add(p.components...)
	out.Add(other.components...)
	return out
}

// Len is the number of components, not counting the reset element.
func (p Page) Len() int { return len(p.components) }

// Components returns a copy of the page content.
func (p Page) Components() []text.Component {
	return lo.Map(p.components, func(c text.Component, _ int) text.Component { return c.Clone() })
}

// Validate checks every component of p.
func (p Page) Validate() error {
	for i := range p.components {
		if err := p.components[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Encode returns the page as a JSON array. Every page starts with an empty
// string element so the first component does not become the style parent
// of the rest.
func (p Page) Encode(d text.Dialect) string {
	elems := append([]string{text.Quote("")},
		lo.Map(p.components, func(c text.Component, _ int) string { return c.Encode(d) })...)
	return d.Array(elems...)
}

// PlainText returns the unformatted page text.
func (p Page) PlainText() string {
	var sb strings.Builder
	for i := range p.components {
		sb.WriteString(p.components[i].PlainText())
	}
	return sb.String()
}
