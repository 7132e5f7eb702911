// Package book assembles written books from text components and renders
// them as item data and /give commands.
package book

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/mj41/mcbook/snbt"
	"github.com/mj41/mcbook/text"
)

// ItemID is the item the give command creates.
const ItemID = "minecraft:written_book"

// ErrInvalidCount is returned for a non-positive item count.
var ErrInvalidCount = errors.New("invalid count")

// Book is a written book. Pages keep insertion order, page 1 first.
type Book struct {
	Author     string
	Title      string
	Generation Generation

	pages []Page
}

// New returns a book with the given pages.
func New(author, title string, pages ...Page) *Book {
	b := &Book{Author: author, Title: title}
	return b.AddPage(pages...)
}

// AddPage appends pages and returns b for chaining.
func (b *Book) AddPage(pages ...Page) *Book {
	for _, p := range pages {
		b.pages = append(b.pages, p.Concat(Page{}))
	}
	return b
}

// Len is the number of pages.
func (b *Book) Len() int { return len(b.pages) }

// Pages returns a copy of the pages.
func (b *Book) Pages() []Page {
	return lo.Map(b.pages, func(p Page, _ int) Page { return p.Concat(Page{}) })
}

// Validate checks every page and the generation.
func (b *Book) Validate() error {
	if b.Generation < GenerationUnset || b.Generation > Tattered {
		return fmt.Errorf("generation %d: %w", b.Generation, text.ErrInvalidEnumValue)
	}
	for i, p := range b.pages {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}
	return nil
}

// NBT returns the item data literal. Each page is JSON text quoted as an
// SNBT string, so escaping happens twice: JSON first, then SNBT.
func (b *Book) NBT(d text.Dialect) string {
	pages := lo.Map(b.pages, func(p Page, _ int) string { return snbt.QuoteSingle(p.Encode(d)) })

	var sb strings.Builder
	sb.WriteString("{author:")
	sb.WriteString(snbt.QuoteDouble(b.Author))
	sb.WriteString(d.Comma)
	sb.WriteString("title")
	sb.WriteString(d.Colon)
	sb.WriteString(snbt.QuoteDouble(b.Title))
	sb.WriteString(d.Comma)
	sb.WriteString("pages")
	sb.WriteString(d.Colon)
	sb.WriteString(d.Array(pages...))
	if b.Generation != GenerationUnset {
		sb.WriteString(d.Comma)
		sb.WriteString("generation")
		sb.WriteString(d.Colon)
		sb.WriteString(strconv.Itoa(b.Generation.Tag()))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Item returns the item id followed by its data.
func (b *Book) Item(d text.Dialect) string {
	return ItemID + b.NBT(d)
}

// GiveCommand returns the /give command in the Legacy dialect. selector is
// not validated.
func (b *Book) GiveCommand(selector string, count int) (string, error) {
	return b.GiveCommandDialect(selector, count, text.Legacy)
}

// GiveCommandDialect is GiveCommand with an explicit dialect. The book is
// validated first, so hand-built components with unknown tags are rejected
// here rather than emitted.
func (b *Book) GiveCommandDialect(selector string, count int, d text.Dialect) (string, error) {
	if count <= 0 {
		return "", fmt.Errorf("count %d: %w", count, ErrInvalidCount)
	}
	if err := b.Validate(); err != nil {
		return "", err
	}
	return "/give " + selector + " " + b.Item(d) + " " + strconv.Itoa(count), nil
}

// PlainText returns the unformatted text of each page.
func (b *Book) PlainText() []string {
	return lo.Map(b.pages, func(p Page, _ int) string { return p.PlainText() })
}
