package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// CapacityError reports a mutation that would break a structural cap. The
// operation is a no-op and the caller's template value is returned unchanged.
type CapacityError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *CapacityError) Error() string {
	return e.Message
}

func capacity(code, format string, args ...interface{}) *CapacityError {
	return &CapacityError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// DefaultMenuButtonLabel is used when the operator switches into menu mode
// without prior menu data.
const DefaultMenuButtonLabel = "Main Menu"

var defaultButtonLabels = map[ButtonKind]string{
	ButtonQuickReply:   "Quick Reply",
	ButtonVisitWebsite: "Visit Website",
	ButtonCallPhone:    "Call Us",
}

// NewTemplate returns the empty template an editing session starts from.
func NewTemplate() Template {
	return Template{
		Type:        TypeMessage,
		Status:      StatusActive,
		Language:    "en",
		Header:      Header{Kind: HeaderNone},
		Interactive: InteractiveNone,
	}
}

// Every mutation below returns a new Template value; the input is never
// modified, so callers can diff or undo freely.

func cloneTemplate(t Template) Template {
	next := t
	if t.Buttons != nil {
		next.Buttons = append([]Button(nil), t.Buttons...)
	}
	if t.Menu != nil {
		next.Menu = cloneMenu(t.Menu)
	}
	if t.Tags != nil {
		next.Tags = append([]string(nil), t.Tags...)
	}
	return next
}

func cloneMenu(m *Menu) *Menu {
	sections := make([]MenuSection, len(m.Sections))
	for i, s := range m.Sections {
		sections[i] = s
		sections[i].Options = append([]MenuOption(nil), s.Options...)
	}
	return &Menu{ButtonLabel: m.ButtonLabel, Sections: sections}
}

// SwitchInteractive moves the template between none, buttons and menu mode.
// Switching always clears the other interactive shape, so at most one of
// buttons/menu is ever populated.
func SwitchInteractive(t Template, kind InteractiveKind) Template {
	next := cloneTemplate(t)
	switch kind {
	case InteractiveButtons:
		next.Menu = nil
		if next.Buttons == nil {
			next.Buttons = []Button{}
		}
	case InteractiveMenu:
		next.Buttons = nil
		next.Menu = ensureMenu(next.Menu)
	default:
		kind = InteractiveNone
		next.Buttons = nil
		next.Menu = nil
	}
	next.Interactive = kind
	return next
}

// ensureMenu constructs the default starter menu (one section, one blank
// option) when no prior menu data exists.
func ensureMenu(m *Menu) *Menu {
	if m != nil && len(m.Sections) > 0 {
		return m
	}
	label := DefaultMenuButtonLabel
	if m != nil && m.ButtonLabel != "" {
		label = m.ButtonLabel
	}
	return &Menu{
		ButtonLabel: label,
		Sections: []MenuSection{{
			ID:      uuid.NewString(),
			Options: []MenuOption{{ID: uuid.NewString()}},
		}},
	}
}

// AddButton appends a button of the given kind with its default label.
// Capacity is enforced here, at mutation time, not just at save.
func AddButton(t Template, kind ButtonKind) (Template, *CapacityError) {
	if err := buttonCapacity(t.Buttons, kind); err != nil {
		return t, err
	}
	next := cloneTemplate(t)
	next.Buttons = append(next.Buttons, Button{
		ID:    uuid.NewString(),
		Kind:  kind,
		Label: defaultButtonLabels[kind],
	})
	return next, nil
}

func buttonCapacity(existing []Button, kind ButtonKind) *CapacityError {
	quick, website, phone := 0, 0, 0
	for _, b := range existing {
		switch b.Kind {
		case ButtonQuickReply:
			quick++
		case ButtonVisitWebsite:
			website++
		case ButtonCallPhone:
			phone++
		}
	}

	switch kind {
	case ButtonQuickReply:
		if website+phone > 0 {
			return capacity("buttons/mixed_kinds", "Quick reply buttons cannot be combined with website or phone buttons")
		}
		if quick >= MaxQuickReplies {
			return capacity("buttons/quick_reply_capacity", "At most %d quick reply buttons are allowed", MaxQuickReplies)
		}
	case ButtonVisitWebsite:
		if quick > 0 {
			return capacity("buttons/mixed_kinds", "Website buttons cannot be combined with quick replies")
		}
		if website >= 1 {
			return capacity("buttons/website_capacity", "Only one website button is allowed")
		}
	case ButtonCallPhone:
		if quick > 0 {
			return capacity("buttons/mixed_kinds", "Phone buttons cannot be combined with quick replies")
		}
		if phone >= 1 {
			return capacity("buttons/phone_capacity", "Only one phone button is allowed")
		}
	default:
		return capacity("buttons/unknown_kind", "Unsupported button type %q", kind)
	}
	return nil
}

// ButtonPatch carries the fields an update touches; nil means leave as-is.
type ButtonPatch struct {
	Label *string
	URL   *string
	Phone *string
}

// UpdateButton applies a patch to the button with the given id. Labels are
// clamped at write time, independently of save-time validation.
func UpdateButton(t Template, id string, patch ButtonPatch) Template {
	next := cloneTemplate(t)
	for i := range next.Buttons {
		if next.Buttons[i].ID != id {
			continue
		}
		if patch.Label != nil {
			next.Buttons[i].Label = clampText(*patch.Label, MaxButtonLabelLen)
		}
		if patch.URL != nil {
			next.Buttons[i].URL = *patch.URL
		}
		if patch.Phone != nil {
			next.Buttons[i].Phone = *patch.Phone
		}
		break
	}
	return next
}

// RemoveButton drops the button with the given id; unknown ids are a no-op.
func RemoveButton(t Template, id string) Template {
	next := cloneTemplate(t)
	buttons := next.Buttons[:0]
	for _, b := range next.Buttons {
		if b.ID != id {
			buttons = append(buttons, b)
		}
	}
	next.Buttons = buttons
	return next
}

// AddMenuSection appends an empty section. Sections may stay empty while
// editing; the validator rejects them at save time.
func AddMenuSection(t Template) Template {
	next := cloneTemplate(t)
	if next.Menu == nil {
		next.Menu = ensureMenu(nil)
		return next
	}
	next.Menu.Sections = append(next.Menu.Sections, MenuSection{ID: uuid.NewString()})
	return next
}

// RemoveMenuSection drops a section; the last remaining section cannot be
// removed, a menu keeps at least one while editing.
func RemoveMenuSection(t Template, id string) (Template, *CapacityError) {
	if t.Menu == nil {
		return t, nil
	}
	if len(t.Menu.Sections) <= 1 {
		return t, capacity("menu/last_section", "A menu needs at least one section")
	}
	next := cloneTemplate(t)
	sections := next.Menu.Sections[:0]
	for _, s := range next.Menu.Sections {
		if s.ID != id {
			sections = append(sections, s)
		}
	}
	next.Menu.Sections = sections
	return next, nil
}

// UpdateMenuSection renames a section, clamped to the title limit.
func UpdateMenuSection(t Template, id string, title string) Template {
	next := cloneTemplate(t)
	if next.Menu == nil {
		return next
	}
	for i := range next.Menu.Sections {
		if next.Menu.Sections[i].ID == id {
			next.Menu.Sections[i].Title = clampText(title, MaxSectionTitleLen)
			break
		}
	}
	return next
}

// SetMenuButtonLabel updates the opener label, clamped to the limit.
func SetMenuButtonLabel(t Template, label string) Template {
	next := cloneTemplate(t)
	if next.Menu == nil {
		return next
	}
	next.Menu.ButtonLabel = clampText(label, MaxMenuButtonLen)
	return next
}

// AddMenuOption appends a blank option to the section, refused once the
// 10-option total is reached.
func AddMenuOption(t Template, sectionID string) (Template, *CapacityError) {
	if t.Menu == nil {
		return t, nil
	}
	if t.Menu.OptionCount() >= MaxMenuOptions {
		return t, capacity("menu/options_capacity", "Menus carry at most %d options in total", MaxMenuOptions)
	}
	next := cloneTemplate(t)
	for i := range next.Menu.Sections {
		if next.Menu.Sections[i].ID == sectionID {
			next.Menu.Sections[i].Options = append(next.Menu.Sections[i].Options, MenuOption{ID: uuid.NewString()})
			break
		}
	}
	return next, nil
}

// OptionPatch carries option fields to update; nil means leave as-is.
type OptionPatch struct {
	Title       *string
	Description *string
}

// UpdateMenuOption patches an option, clamping title and description.
func UpdateMenuOption(t Template, sectionID, id string, patch OptionPatch) Template {
	next := cloneTemplate(t)
	if next.Menu == nil {
		return next
	}
	for i := range next.Menu.Sections {
		if next.Menu.Sections[i].ID != sectionID {
			continue
		}
		for j := range next.Menu.Sections[i].Options {
			if next.Menu.Sections[i].Options[j].ID != id {
				continue
			}
			if patch.Title != nil {
				next.Menu.Sections[i].Options[j].Title = clampText(*patch.Title, MaxOptionTitleLen)
			}
			if patch.Description != nil {
				next.Menu.Sections[i].Options[j].Description = clampText(*patch.Description, MaxOptionDescLen)
			}
			break
		}
		break
	}
	return next
}

// RemoveMenuOption always succeeds, even down to an empty section; the
// empty-section case is caught by the validator at save time.
func RemoveMenuOption(t Template, sectionID, id string) Template {
	next := cloneTemplate(t)
	if next.Menu == nil {
		return next
	}
	for i := range next.Menu.Sections {
		if next.Menu.Sections[i].ID != sectionID {
			continue
		}
		options := next.Menu.Sections[i].Options[:0]
		for _, o := range next.Menu.Sections[i].Options {
			if o.ID != id {
				options = append(options, o)
			}
		}
		next.Menu.Sections[i].Options = options
		break
	}
	return next
}
