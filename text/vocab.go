package text

import (
	"fmt"

	"github.com/samber/lo"
)

// ClickAction is the action tag of a click event.
type ClickAction string

const (
	OpenURL         ClickAction = "open_url"
	OpenFile        ClickAction = "open_file"
	RunCommand      ClickAction = "run_command"
	SuggestCommand  ClickAction = "suggest_command"
	ChangePage      ClickAction = "change_page"
	CopyToClipboard ClickAction = "copy_to_clipboard"
)

var clickActions = []ClickAction{OpenURL, OpenFile, RunCommand, SuggestCommand, ChangePage, CopyToClipboard}

// ParseClickAction returns the ClickAction whose wire tag is s.
func ParseClickAction(s string) (ClickAction, error) {
	a := ClickAction(s)
	if !a.Valid() {
		return "", fmt.Errorf("click action %q: %w", s, ErrInvalidEnumValue)
	}
	return a, nil
}

// Valid reports whether a is one of the known click actions.
func (a ClickAction) Valid() bool { return lo.Contains(clickActions, a) }

func (a ClickAction) String() string { return string(a) }

// HoverAction is the action tag of a hover event.
type HoverAction string

const (
	ShowText   HoverAction = "show_text"
	ShowItem   HoverAction = "show_item"
	ShowEntity HoverAction = "show_entity"
)

var hoverActions = []HoverAction{ShowText, ShowItem, ShowEntity}

// ParseHoverAction returns the HoverAction whose wire tag is s.
func ParseHoverAction(s string) (HoverAction, error) {
	a := HoverAction(s)
	if !a.Valid() {
		return "", fmt.Errorf("hover action %q: %w", s, ErrInvalidEnumValue)
	}
	return a, nil
}

// Valid reports whether a is one of the known hover actions.
func (a HoverAction) Valid() bool { return lo.Contains(hoverActions, a) }

func (a HoverAction) String() string { return string(a) }

// ContentType is the "type" discriminator of a component.
type ContentType string

const (
	TypeText         ContentType = "text"
	TypeTranslatable ContentType = "translatable"
	TypeScore        ContentType = "score"
	TypeSelector     ContentType = "selector"
	TypeKeybind      ContentType = "keybind"
)

var contentTypes = []ContentType{TypeText, TypeTranslatable, TypeScore, TypeSelector, TypeKeybind}

// ParseContentType returns the ContentType whose wire tag is s.
func ParseContentType(s string) (ContentType, error) {
	t := ContentType(s)
	if !lo.Contains(contentTypes, t) {
		return "", fmt.Errorf("content type %q: %w", s, ErrInvalidEnumValue)
	}
	return t, nil
}

func (t ContentType) String() string { return string(t) }
