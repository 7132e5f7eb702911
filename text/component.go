// Package text models Minecraft JSON text components: styles, click and
// hover events, and nested extra children, encoded in a fixed key order.
package text

import "fmt"

// Component is one node of a text component tree. The zero Type means
// TypeText. Children in Extra carry their own style; nothing is inherited
// at this level.
type Component struct {
	Type  ContentType
	Text  string
	Style Style

	// translatable
	Translate string
	Fallback  string
	With      []Component

	// score
	ScoreName      string
	ScoreObjective string

	// selector
	Selector  string
	Separator *Component

	// keybind
	Keybind string

	ClickEvent *ClickEvent
	HoverEvent *HoverEvent
	Extra      []Component
}

// Option configures a Component under construction.
type Option func(*Component) error

// NewText returns a text component. text may be empty.
func NewText(text string, opts ...Option) (Component, error) {
	return build(Component{Type: TypeText, Text: text}, opts)
}

// NewTranslatable returns a translatable component for the given
// translation key.
func NewTranslatable(key string, with []Component, opts ...Option) (Component, error) {
	if key == "" {
		return Component{}, fmt.Errorf("translate: %w", ErrMissingRequiredField)
	}
	return build(Component{Type: TypeTranslatable, Translate: key, With: cloneAll(with)}, opts)
}

// NewScore returns a score component.
func NewScore(name, objective string, opts ...Option) (Component, error) {
	if name == "" {
		return Component{}, fmt.Errorf("score name: %w", ErrMissingRequiredField)
	}
	if objective == "" {
		return Component{}, fmt.Errorf("score objective: %w", ErrMissingRequiredField)
	}
	return build(Component{Type: TypeScore, ScoreName: name, ScoreObjective: objective}, opts)
}

// NewSelector returns a selector component. separator may be nil.
func NewSelector(selector string, separator *Component, opts ...Option) (Component, error) {
	if selector == "" {
		return Component{}, fmt.Errorf("selector: %w", ErrMissingRequiredField)
	}
	c := Component{Type: TypeSelector, Selector: selector}
	if separator != nil {
		sep := separator.Clone()
		c.Separator = &sep
	}
	return build(c, opts)
}

// NewKeybind returns a keybind component such as "key.jump".
func NewKeybind(key string, opts ...Option) (Component, error) {
	if key == "" {
		return Component{}, fmt.Errorf("keybind: %w", ErrMissingRequiredField)
	}
	return build(Component{Type: TypeKeybind, Keybind: key}, opts)
}

func build(c Component, opts []Option) (Component, error) {
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Component{}, err
		}
	}
	return c, nil
}

// WithColor sets a named or #RRGGBB color, rejecting anything else.
func WithColor(color string) Option {
	return func(c *Component) error {
		if err := ValidateColor(color); err != nil {
			return err
		}
		c.Style.Color = color
		return nil
	}
}

// WithStyle replaces the whole style.
func WithStyle(s Style) Option {
	return func(c *Component) error {
		if err := s.Validate(); err != nil {
			return err
		}
		c.Style = s
		return nil
	}
}

// WithBold sets the bold flag explicitly.
func WithBold(b bool) Option {
	return func(c *Component) error { c.Style.Bold = FlagOf(b); return nil }
}

// WithItalic sets the italic flag explicitly.
func WithItalic(b bool) Option {
	return func(c *Component) error { c.Style.Italic = FlagOf(b); return nil }
}

// WithUnderlined sets the underlined flag explicitly.
func WithUnderlined(b bool) Option {
	return func(c *Component) error { c.Style.Underlined = FlagOf(b); return nil }
}

// WithStrikethrough sets the strikethrough flag explicitly.
func WithStrikethrough(b bool) Option {
	return func(c *Component) error { c.Style.Strikethrough = FlagOf(b); return nil }
}

// WithObfuscated sets the obfuscated flag explicitly.
func WithObfuscated(b bool) Option {
	return func(c *Component) error { c.Style.Obfuscated = FlagOf(b); return nil }
}

// WithFont sets the resource location of the font.
func WithFont(font string) Option {
	return func(c *Component) error { c.Style.Font = font; return nil }
}

// WithFallback sets the text shown when a translation key is unknown.
func WithFallback(fallback string) Option {
	return func(c *Component) error { c.Fallback = fallback; return nil }
}

// WithClick attaches a click event with a known action.
func WithClick(e ClickEvent) Option {
	return func(c *Component) error {
		if !e.Action.Valid() {
			return fmt.Errorf("click action %q: %w", string(e.Action), ErrInvalidEnumValue)
		}
		c.ClickEvent = cloneClick(&e)
		return nil
	}
}

// WithHover attaches a hover event whose payload matches its action.
func WithHover(e HoverEvent) Option {
	return func(c *Component) error {
		if err := e.Validate(); err != nil {
			return err
		}
		c.HoverEvent = cloneHover(&e)
		return nil
	}
}

// WithExtra appends children, encoded as the "extra" array.
func WithExtra(children ...Component) Option {
	return func(c *Component) error {
		c.Extra = append(c.Extra, cloneAll(children)...)
		return nil
	}
}

// Kind returns the content type, treating the zero value as TypeText.
func (c Component) Kind() ContentType {
	if c.Type == "" {
		return TypeText
	}
	return c.Type
}

// Validate checks a component built without the constructors, recursively.
func (c Component) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return err
	}
	switch c.Kind() {
	case TypeText:
	case TypeTranslatable:
		if c.Translate == "" {
			return fmt.Errorf("translate: %w", ErrMissingRequiredField)
		}
	case TypeScore:
		if c.ScoreName == "" || c.ScoreObjective == "" {
			return fmt.Errorf("score name/objective: %w", ErrMissingRequiredField)
		}
	case TypeSelector:
		if c.Selector == "" {
			return fmt.Errorf("selector: %w", ErrMissingRequiredField)
		}
	case TypeKeybind:
		if c.Keybind == "" {
			return fmt.Errorf("keybind: %w", ErrMissingRequiredField)
		}
	default:
		return fmt.Errorf("content type %q: %w", string(c.Type), ErrInvalidEnumValue)
	}
	if c.ClickEvent != nil && !c.ClickEvent.Action.Valid() {
		return fmt.Errorf("click action %q: %w", string(c.ClickEvent.Action), ErrInvalidEnumValue)
	}
	if c.HoverEvent != nil {
		if err := c.HoverEvent.Validate(); err != nil {
			return err
		}
	}
	if c.Separator != nil {
		if err := c.Separator.Validate(); err != nil {
			return err
		}
	}
	for _, children := range [][]Component{c.With, c.Extra} {
		for i := range children {
			if err := children[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a deep copy, so the result shares no slices or pointers
// with c.
func (c Component) Clone() Component {
	out := c
	out.With = cloneAll(c.With)
	out.Extra = cloneAll(c.Extra)
	if c.Separator != nil {
		sep := c.Separator.Clone()
		out.Separator = &sep
	}
	out.ClickEvent = cloneClick(c.ClickEvent)
	out.HoverEvent = cloneHover(c.HoverEvent)
	return out
}

func cloneAll(cs []Component) []Component {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Component, len(cs))
	for i := range cs {
		out[i] = cs[i].Clone()
	}
	return out
}

func cloneClick(e *ClickEvent) *ClickEvent {
	if e == nil {
		return nil
	}
	ev := *e
	return &ev
}

func cloneHover(e *HoverEvent) *HoverEvent {
	if e == nil {
		return nil
	}
	ev := *e
	if ev.Text != nil {
		t := ev.Text.Clone()
		ev.Text = &t
	}
	if ev.Item != nil {
		item := *ev.Item
		ev.Item = &item
	}
	if ev.Entity != nil {
		ent := *ev.Entity
		if ent.Name != nil {
			name := ent.Name.Clone()
			ent.Name = &name
		}
		ev.Entity = &ent
	}
	return &ev
}
