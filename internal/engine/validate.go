package engine

import (
	"fmt"
	"unicode/utf8"
)

// ValidationError is returned as data, never panicked or thrown; Code is a
// stable identifier a UI can map to a field, Message is operator-readable.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ValidateButtons enforces the platform button rules: up to 3 quick replies,
// or up to one website plus one phone button, never mixed, labels capped at
// 24 characters. Returns nil when the set is sendable.
func ValidateButtons(items []Button) *ValidationError {
	quick, website, phone := 0, 0, 0
	for _, b := range items {
		switch b.Kind {
		case ButtonQuickReply:
			quick++
		case ButtonVisitWebsite:
			website++
		case ButtonCallPhone:
			phone++
		default:
			return invalid("buttons/unknown_kind", "Unsupported button type %q", b.Kind)
		}
		if utf8.RuneCountInString(b.Label) > MaxButtonLabelLen {
			return invalid("buttons/label_too_long", "Button label %q exceeds %d characters", b.Label, MaxButtonLabelLen)
		}
	}

	if quick > 0 && website+phone > 0 {
		return invalid("buttons/mixed_kinds", "Quick reply buttons cannot be combined with website or phone buttons")
	}
	if quick > MaxQuickReplies {
		return invalid("buttons/too_many_quick_replies", "At most %d quick reply buttons are allowed", MaxQuickReplies)
	}
	if website > 1 {
		return invalid("buttons/duplicate_website", "Only one website button is allowed")
	}
	if phone > 1 {
		return invalid("buttons/duplicate_phone", "Only one phone button is allowed")
	}
	if website+phone > MaxCTAButtons {
		return invalid("buttons/too_many_cta", "At most %d call-to-action buttons are allowed", MaxCTAButtons)
	}
	return nil
}

// ValidateMenu enforces the list-menu rules: a non-empty opener label, at
// least one section, 1-10 options overall, no empty sections, titled options.
func ValidateMenu(m *Menu) *ValidationError {
	if m == nil || len(m.Sections) == 0 {
		return invalid("menu/no_sections", "Menu needs at least one section")
	}
	if m.ButtonLabel == "" {
		return invalid("menu/button_label_required", "Menu button label is required")
	}
	if utf8.RuneCountInString(m.ButtonLabel) > MaxMenuButtonLen {
		return invalid("menu/button_label_too_long", "Menu button label exceeds %d characters", MaxMenuButtonLen)
	}

	total := 0
	for i, s := range m.Sections {
		if len(s.Options) == 0 {
			return invalid("menu/empty_section", "Section %d has no options", i+1)
		}
		if utf8.RuneCountInString(s.Title) > MaxSectionTitleLen {
			return invalid("menu/section_title_too_long", "Section title %q exceeds %d characters", s.Title, MaxSectionTitleLen)
		}
		for _, o := range s.Options {
			if o.Title == "" {
				return invalid("menu/option_title_required", "Every menu option needs a title")
			}
			if utf8.RuneCountInString(o.Title) > MaxOptionTitleLen {
				return invalid("menu/option_title_too_long", "Option title %q exceeds %d characters", o.Title, MaxOptionTitleLen)
			}
			if utf8.RuneCountInString(o.Description) > MaxOptionDescLen {
				return invalid("menu/description_too_long", "Option description exceeds %d characters", MaxOptionDescLen)
			}
		}
		total += len(s.Options)
	}
	if total > MaxMenuOptions {
		return invalid("menu/too_many_options", "Menus carry at most %d options in total", MaxMenuOptions)
	}
	return nil
}

// ValidateTemplate is the save-time gate: scalar requirements plus whichever
// interactive rules apply.
func ValidateTemplate(t Template) *ValidationError {
	if t.Title == "" {
		return invalid("template/title_required", "Template title is required")
	}
	if t.Body == "" {
		return invalid("template/body_required", "Template body is required")
	}
	switch t.Interactive {
	case InteractiveButtons:
		return ValidateButtons(t.Buttons)
	case InteractiveMenu:
		return ValidateMenu(t.Menu)
	}
	return nil
}
