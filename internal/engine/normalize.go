package engine

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Raw shapes the normalizer accepts. Templates have been persisted in several
// generations of JSON: the current canonical payload, an older flat buttons
// array, menus embedded in a "placeholders" bag, and bare option lists with no
// sections. Each field is declared explicitly so no untyped access chain is
// trusted; fields whose shape varied over time use json.RawMessage and are
// decoded per known shape in priority order.

type rawButton struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Phone string `json:"phone"`
}

type rawOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type rawSection struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Options []rawOption `json:"options"`
	Rows    []rawOption `json:"rows"`
}

type rawMenu struct {
	ButtonLabel string       `json:"buttonLabel"`
	Button      string       `json:"button"`
	Sections    []rawSection `json:"sections"`
	Options     []rawOption  `json:"options"`
}

type rawPlaceholders struct {
	HeaderType      string          `json:"headerType"`
	HeaderText      string          `json:"headerText"`
	HeaderMediaType string          `json:"headerMediaType"`
	FooterText      string          `json:"footerText"`
	MediaURL        string          `json:"mediaUrl"`
	Menu            json.RawMessage `json:"menu"`
	Options         []rawOption     `json:"options"`
	Buttons         []rawButton     `json:"buttons"`
}

type rawTemplate struct {
	Title           string           `json:"title"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	Status          string           `json:"status"`
	Lang            string           `json:"lang"`
	Language        string           `json:"language"`
	Body            string           `json:"body"`
	MediaURL        string           `json:"mediaUrl"`
	ExpiresAt       string           `json:"expiresAt"`
	Category        string           `json:"category"`
	HeaderType      string           `json:"headerType"`
	HeaderText      string           `json:"headerText"`
	HeaderMediaType string           `json:"headerMediaType"`
	FooterText      string           `json:"footerText"`
	InteractiveType string           `json:"interactiveType"`
	Buttons         []rawButton      `json:"buttons"`
	Menu            json.RawMessage  `json:"menu"`
	Options         []rawOption      `json:"options"`
	Placeholders    *rawPlaceholders `json:"placeholders"`
	Tags            []string         `json:"tags"`
	IsDeleted       bool             `json:"isDeleted"`
}

// Normalize converts any persisted template JSON into the canonical model.
// It never fails: malformed documents degrade to an empty default template,
// over-long labels are clamped rather than rejected, and missing ids are
// generated. Normalizing already-canonical output is a no-op.
func Normalize(doc []byte) Template {
	var raw rawTemplate
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &raw); err != nil {
			raw = rawTemplate{}
		}
	}

	t := NewTemplate()
	t.Title = firstNonEmpty(raw.Title, raw.Name)
	t.Type = normalizeType(raw.Type)
	t.Status = normalizeStatus(raw.Status)
	t.Language = normalizeLanguage(firstNonEmpty(raw.Lang, raw.Language))
	t.Body = raw.Body
	t.Category = raw.Category
	t.Tags = MergeTags(nil, raw.Tags)
	t.IsDeleted = raw.IsDeleted

	if raw.ExpiresAt != "" {
		if ts, err := time.Parse(time.RFC3339, raw.ExpiresAt); err == nil {
			t.ExpiresAt = &ts
		}
	}

	ph := raw.Placeholders
	if ph == nil {
		ph = &rawPlaceholders{}
	}

	t.Header = normalizeHeader(raw, ph)
	t.Footer = firstNonEmpty(raw.FooterText, ph.FooterText)

	normalizeInteractive(&t, raw, ph)
	return t
}

// normalizeHeader prefers top-level fields over the legacy placeholders bag;
// a bare media URL with no declared header type still yields a media header.
func normalizeHeader(raw rawTemplate, ph *rawPlaceholders) Header {
	kind := firstNonEmpty(raw.HeaderType, ph.HeaderType)
	text := firstNonEmpty(raw.HeaderText, ph.HeaderText)
	mediaType := firstNonEmpty(raw.HeaderMediaType, ph.HeaderMediaType)
	mediaURL := firstNonEmpty(raw.MediaURL, ph.MediaURL)

	switch strings.ToLower(kind) {
	case "none":
		return Header{Kind: HeaderNone}
	case "text":
		return Header{Kind: HeaderText, Text: text}
	case "media":
		return Header{Kind: HeaderMedia, MediaType: normalizeMediaType(mediaType), URL: mediaURL}
	case "image", "video", "document":
		// older rows stored the media type directly as the header type
		return Header{Kind: HeaderMedia, MediaType: strings.ToLower(kind), URL: mediaURL}
	}
	if mediaURL != "" {
		return Header{Kind: HeaderMedia, MediaType: normalizeMediaType(mediaType), URL: mediaURL}
	}
	if text != "" {
		return Header{Kind: HeaderText, Text: text}
	}
	return Header{Kind: HeaderNone}
}

// normalizeInteractive resolves which interactive shape the document carries.
// An explicit interactiveType wins; otherwise presence decides, checked in
// priority order: top-level menu, top-level buttons, placeholders menu,
// flat legacy options, placeholders buttons.
func normalizeInteractive(t *Template, raw rawTemplate, ph *rawPlaceholders) {
	menu := decodeRawMenu(raw.Menu)
	phMenu := decodeRawMenu(ph.Menu)
	flatOptions := raw.Options
	if len(flatOptions) == 0 {
		flatOptions = ph.Options
	}
	buttons := raw.Buttons
	if len(buttons) == 0 {
		buttons = ph.Buttons
	}

	kind := InteractiveKind(strings.ToLower(raw.InteractiveType))
	switch kind {
	case InteractiveNone, InteractiveButtons, InteractiveMenu:
		// explicit field wins
	default:
		switch {
		case menuHasContent(menu):
			kind = InteractiveMenu
		case len(raw.Buttons) > 0:
			kind = InteractiveButtons
		case menuHasContent(phMenu) || len(flatOptions) > 0:
			kind = InteractiveMenu
		case len(buttons) > 0:
			kind = InteractiveButtons
		default:
			kind = InteractiveNone
		}
	}

	t.Interactive = kind
	switch kind {
	case InteractiveButtons:
		t.Buttons = normalizeButtons(buttons)
	case InteractiveMenu:
		src := menu
		if !menuHasContent(src) {
			src = phMenu
		}
		t.Menu = normalizeMenu(src, flatOptions)
	}
}

// decodeRawMenu tries the known historical encodings of the menu field: a
// proper menu object, or a bare array of options.
func decodeRawMenu(data json.RawMessage) *rawMenu {
	if len(data) == 0 {
		return nil
	}
	var obj rawMenu
	if err := json.Unmarshal(data, &obj); err == nil {
		return &obj
	}
	var opts []rawOption
	if err := json.Unmarshal(data, &opts); err == nil && len(opts) > 0 {
		return &rawMenu{Options: opts}
	}
	return nil
}

func menuHasContent(m *rawMenu) bool {
	return m != nil && (len(m.Sections) > 0 || len(m.Options) > 0 || firstNonEmpty(m.ButtonLabel, m.Button) != "")
}

func normalizeButtons(raws []rawButton) []Button {
	buttons := make([]Button, 0, len(raws))
	for _, rb := range raws {
		kind := ButtonKind(strings.ToLower(firstNonEmpty(rb.Type, rb.Kind)))
		switch kind {
		case ButtonQuickReply, ButtonVisitWebsite, ButtonCallPhone:
		default:
			continue // unknown button kinds are dropped
		}
		buttons = append(buttons, Button{
			ID:    ensureID(rb.ID),
			Kind:  kind,
			Label: clampText(firstNonEmpty(rb.Label, rb.Title), MaxButtonLabelLen),
			URL:   rb.URL,
			Phone: rb.Phone,
		})
	}
	return buttons
}

// normalizeMenu builds the canonical menu. Sections win when present;
// otherwise a flat options list is wrapped into one synthetic untitled
// section. A menu with no usable data stays nil — only the editor's
// switch-to-menu operation constructs a default menu.
func normalizeMenu(m *rawMenu, flatOptions []rawOption) *Menu {
	var sections []MenuSection
	label := ""

	if m != nil {
		label = firstNonEmpty(m.ButtonLabel, m.Button)
		if len(m.Sections) > 0 {
			sections = make([]MenuSection, 0, len(m.Sections))
			for _, rs := range m.Sections {
				opts := rs.Options
				if len(opts) == 0 {
					opts = rs.Rows
				}
				sections = append(sections, MenuSection{
					ID:      ensureID(rs.ID),
					Title:   clampText(rs.Title, MaxSectionTitleLen),
					Options: normalizeOptions(opts),
				})
			}
		} else if len(m.Options) > 0 {
			flatOptions = m.Options
		}
	}

	if sections == nil && len(flatOptions) > 0 {
		sections = []MenuSection{{
			ID:      uuid.NewString(),
			Options: normalizeOptions(flatOptions),
		}}
	}
	if sections == nil && label == "" {
		return nil
	}

	return &Menu{
		ButtonLabel: clampText(label, MaxMenuButtonLen),
		Sections:    sections,
	}
}

func normalizeOptions(raws []rawOption) []MenuOption {
	options := make([]MenuOption, 0, len(raws))
	for _, ro := range raws {
		options = append(options, MenuOption{
			ID:          ensureID(ro.ID),
			Title:       clampText(ro.Title, MaxOptionTitleLen),
			Description: clampText(ro.Description, MaxOptionDescLen),
		})
	}
	return options
}

func normalizeType(s string) MessageType {
	switch MessageType(strings.ToLower(s)) {
	case TypeChoice:
		return TypeChoice
	case TypeInput:
		return TypeInput
	case TypeAPI:
		return TypeAPI
	default:
		return TypeMessage
	}
}

// normalizeStatus collapses historical workflow states: drafts and approved
// templates are live, archived is archived, anything unrecognized passes
// through untouched.
func normalizeStatus(s string) Status {
	switch strings.ToLower(s) {
	case "", "active", "draft", "approved":
		return StatusActive
	case "archived":
		return StatusArchived
	default:
		return Status(s)
	}
}

func normalizeLanguage(s string) string {
	switch strings.ToLower(s) {
	case "", "en":
		return "en"
	case "my":
		return "my"
	case "cn", "zh":
		return "zh"
	default:
		return s
	}
}

func normalizeMediaType(s string) string {
	switch strings.ToLower(s) {
	case "video":
		return "video"
	case "document":
		return "document"
	default:
		return "image"
	}
}

func ensureID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
