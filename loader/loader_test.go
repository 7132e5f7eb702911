package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj41/mcbook/book"
	"github.com/mj41/mcbook/text"
)

const mysteryBook = `
author: Someone
title: Mystery Book
pages:
  - - text: "[Go to Google]"
      color: blue
      italic: true
      underlined: true
      click:
        action: open_url
        value: https://google.com
`

func TestLoadWorkedExample(t *testing.T) {
	b, err := Load(strings.NewReader(mysteryBook))
	require.NoError(t, err)

	got, err := b.GiveCommand("@s", 1)
	require.NoError(t, err)
	assert.Equal(t, `/give @s minecraft:written_book{author:"Someone", title: "Mystery Book", pages: ['["", `+
		`{"color": "blue", "clickEvent": {"action": "open_url", "value": "https://google.com"}, `+
		`"italic": True, "underline": True, "text": "[Go to Google]", "type": "text"}]']} 1`, got)
}

func TestLoadAllKinds(t *testing.T) {
	doc := `
author: a
title: b
generation: copy_of_original
pages:
  - - text: ""
      bold: false
      extra:
        - text: child
          hover:
            item: {id: "minecraft:apple", count: 2}
    - translate: chat.type.text
      with: [{text: Steve}]
    - score: {name: "@p", objective: kills}
    - selector: "@a"
      separator: {text: ", "}
    - keybind: key.jump
      hover:
        entity:
          type: minecraft:pig
          uuid: 00000000-0000-0000-0000-000000000001
          name: {text: Pig}
  - []
`
	b, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
	assert.Equal(t, book.CopyOfOriginal, b.Generation)

	comps := b.Pages()[0].Components()
	require.Len(t, comps, 5)
	assert.Equal(t, text.TypeText, comps[0].Kind())
	assert.Equal(t, text.FlagFalse, comps[0].Style.Bold)
	assert.Equal(t, text.ShowItem, comps[0].Extra[0].HoverEvent.Action)
	assert.Equal(t, text.TypeTranslatable, comps[1].Kind())
	assert.Equal(t, text.TypeScore, comps[2].Kind())
	assert.Equal(t, text.TypeSelector, comps[3].Kind())
	assert.Equal(t, text.TypeKeybind, comps[4].Kind())
	assert.Equal(t, "Pig", comps[4].HoverEvent.Entity.Name.Text)
	assert.Equal(t, 0, b.Pages()[1].Len())
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		target error
		where  string
	}{
		{
			name:   "bad click action",
			doc:    "pages: [[{text: x, click: {action: open_door, value: y}}]]",
			target: text.ErrInvalidEnumValue,
			where:  "pages[0][0]: click",
		},
		{
			name:   "bad color",
			doc:    "pages: [[{text: x}], [{text: y, color: teal}]]",
			target: text.ErrInvalidColor,
			where:  "pages[1][0]",
		},
		{
			name:   "missing text",
			doc:    "pages: [[{color: red}]]",
			target: text.ErrMissingRequiredField,
			where:  "pages[0][0]",
		},
		{
			name:   "empty hover",
			doc:    "pages: [[{text: x, hover: {}}]]",
			target: text.ErrMissingRequiredField,
			where:  "hover",
		},
		{
			name:   "nested extra",
			doc:    "pages: [[{text: x, extra: [{text: y}, {bold: true}]}]]",
			target: text.ErrMissingRequiredField,
			where:  "extra[1]",
		},
		{
			name:   "text and translate",
			doc:    "pages: [[{text: x, translate: chat.type.text}]]",
			target: text.ErrInvalidEnumValue,
			where:  "multiple content keys [text translate]",
		},
		{
			name:   "two hover payloads",
			doc:    "pages: [[{text: x, hover: {text: {text: y}, item: {id: minecraft:apple}}}]]",
			target: text.ErrInvalidEnumValue,
			where:  "hover: 2 hover payloads",
		},
		{
			name:   "bad generation",
			doc:    "generation: forged",
			target: text.ErrInvalidEnumValue,
			where:  "generation",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(c.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, c.target)
			assert.Contains(t, err.Error(), c.where)
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("pages: [[{text: x, underline: true}]]"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mysteryBook), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Mystery Book", b.Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
