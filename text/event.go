package text

import "fmt"

// ClickEvent runs when the player clicks the component. Value is passed
// through as-is; its shape depends on Action.
type ClickEvent struct {
	Action ClickAction
	Value  string
}

// NewClickEvent checks that action is a known click action.
func NewClickEvent(action ClickAction, value string) (ClickEvent, error) {
	if !action.Valid() {
		return ClickEvent{}, fmt.Errorf("click action %q: %w", string(action), ErrInvalidEnumValue)
	}
	return ClickEvent{Action: action, Value: value}, nil
}

func (e ClickEvent) object() object {
	return object{
		{"action", string(e.Action)},
		{"value", e.Value},
	}
}

// HoverItem is the payload of a show_item hover event.
type HoverItem struct {
	ID    string
	Count int    // omitted when zero
	Tag   string // SNBT of the item tag, omitted when empty
}

// HoverEntity is the payload of a show_entity hover event.
type HoverEntity struct {
	Type string
	UUID string
	Name *Component
}

// HoverEvent shows a tooltip. Exactly one payload is set, matching Action.
type HoverEvent struct {
	Action HoverAction
	Text   *Component
	Item   *HoverItem
	Entity *HoverEntity
}

// NewShowText returns a show_text hover event.
func NewShowText(c Component) HoverEvent {
	return HoverEvent{Action: ShowText, Text: &c}
}

// NewShowItem returns a show_item hover event.
func NewShowItem(item HoverItem) (HoverEvent, error) {
	if item.ID == "" {
		return HoverEvent{}, fmt.Errorf("show_item id: %w", ErrMissingRequiredField)
	}
	return HoverEvent{Action: ShowItem, Item: &item}, nil
}

// NewShowEntity returns a show_entity hover event.
func NewShowEntity(entity HoverEntity) (HoverEvent, error) {
	if entity.Type == "" {
		return HoverEvent{}, fmt.Errorf("show_entity type: %w", ErrMissingRequiredField)
	}
	if entity.UUID == "" {
		return HoverEvent{}, fmt.Errorf("show_entity id: %w", ErrMissingRequiredField)
	}
	return HoverEvent{Action: ShowEntity, Entity: &entity}, nil
}

// Validate checks that the payload matching Action is present.
func (e HoverEvent) Validate() error {
	switch e.Action {
	case ShowText:
		if e.Text == nil {
			return fmt.Errorf("show_text contents: %w", ErrMissingRequiredField)
		}
		return e.Text.Validate()
	case ShowItem:
		if e.Item == nil || e.Item.ID == "" {
			return fmt.Errorf("show_item id: %w", ErrMissingRequiredField)
		}
	case ShowEntity:
		if e.Entity == nil || e.Entity.Type == "" || e.Entity.UUID == "" {
			return fmt.Errorf("show_entity type/id: %w", ErrMissingRequiredField)
		}
		if e.Entity.Name != nil {
			return e.Entity.Name.Validate()
		}
	default:
		return fmt.Errorf("hover action %q: %w", string(e.Action), ErrInvalidEnumValue)
	}
	return nil
}

func (e HoverEvent) object(d Dialect) object {
	o := object{{"action", string(e.Action)}}
	switch e.Action {
	case ShowText:
		if e.Text != nil {
			o = append(o, field{"contents", e.Text.object(d)})
		}
	case ShowItem:
		if e.Item != nil {
			item := object{{"id", e.Item.ID}}
			if e.Item.Count != 0 {
				item = append(item, field{"count", e.Item.Count})
			}
			if e.Item.Tag != "" {
				item = append(item, field{"tag", e.Item.Tag})
			}
			o = append(o, field{"contents", item})
		}
	case ShowEntity:
		if e.Entity != nil {
			ent := object{{"type", e.Entity.Type}, {"id", e.Entity.UUID}}
			if e.Entity.Name != nil {
				ent = append(ent, field{"name", e.Entity.Name.object(d)})
			}
			o = append(o, field{"contents", ent})
		}
	}
	return o
}
