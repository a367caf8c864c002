package engine

import (
	"encoding/json"
	"time"
)

// SavePayload is the canonical persisted document. The placeholders block
// mirrors header, footer and menu data for readers that still consume the
// legacy shape; Normalize accepts this payload back unchanged.
type SavePayload struct {
	Title           string               `json:"title"`
	Type            string               `json:"type"`
	Status          string               `json:"status"`
	Lang            string               `json:"lang"`
	Body            string               `json:"body"`
	MediaURL        string               `json:"mediaUrl,omitempty"`
	ExpiresAt       string               `json:"expiresAt,omitempty"`
	Category        string               `json:"category,omitempty"`
	HeaderType      string               `json:"headerType"`
	HeaderText      string               `json:"headerText,omitempty"`
	HeaderMediaType string               `json:"headerMediaType,omitempty"`
	FooterText      string               `json:"footerText,omitempty"`
	Buttons         []PayloadButton      `json:"buttons"`
	Menu            *PayloadMenu         `json:"menu"`
	InteractiveType string               `json:"interactiveType"`
	Tags            []string             `json:"tags,omitempty"`
	IsDeleted       bool                 `json:"isDeleted,omitempty"`
	Placeholders    *PayloadPlaceholders `json:"placeholders,omitempty"`
}

type PayloadButton struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type PayloadMenu struct {
	ButtonLabel string           `json:"buttonLabel"`
	Sections    []PayloadSection `json:"sections"`
}

type PayloadSection struct {
	ID      string          `json:"id"`
	Title   string          `json:"title,omitempty"`
	Options []PayloadOption `json:"options"`
}

type PayloadOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type PayloadPlaceholders struct {
	HeaderType string          `json:"headerType,omitempty"`
	HeaderText string          `json:"headerText,omitempty"`
	FooterText string          `json:"footerText,omitempty"`
	Menu       *PayloadMenu    `json:"menu,omitempty"`
	Options    []PayloadOption `json:"options,omitempty"`
}

// BuildPayload serializes the canonical model into the save contract.
func BuildPayload(t Template) SavePayload {
	p := SavePayload{
		Title:           t.Title,
		Type:            string(t.Type),
		Status:          string(t.Status),
		Lang:            t.Language,
		Body:            t.Body,
		Category:        t.Category,
		HeaderType:      string(t.Header.Kind),
		FooterText:      t.Footer,
		Buttons:         []PayloadButton{},
		InteractiveType: string(t.Interactive),
		Tags:            t.Tags,
		IsDeleted:       t.IsDeleted,
	}

	if t.ExpiresAt != nil {
		p.ExpiresAt = t.ExpiresAt.Format(time.RFC3339)
	}

	switch t.Header.Kind {
	case HeaderText:
		p.HeaderText = t.Header.Text
	case HeaderMedia:
		p.HeaderMediaType = t.Header.MediaType
		p.MediaURL = t.Header.URL
	}

	if t.Interactive == InteractiveButtons {
		for _, b := range t.Buttons {
			p.Buttons = append(p.Buttons, PayloadButton{
				ID:    b.ID,
				Type:  string(b.Kind),
				Label: b.Label,
				URL:   b.URL,
				Phone: b.Phone,
			})
		}
	}

	if t.Interactive == InteractiveMenu && t.Menu != nil {
		menu := &PayloadMenu{ButtonLabel: t.Menu.ButtonLabel, Sections: []PayloadSection{}}
		var flat []PayloadOption
		for _, s := range t.Menu.Sections {
			section := PayloadSection{ID: s.ID, Title: s.Title, Options: []PayloadOption{}}
			for _, o := range s.Options {
				opt := PayloadOption{ID: o.ID, Title: o.Title, Description: o.Description}
				section.Options = append(section.Options, opt)
				flat = append(flat, opt)
			}
			menu.Sections = append(menu.Sections, section)
		}
		p.Menu = menu
		p.Placeholders = &PayloadPlaceholders{
			HeaderType: p.HeaderType,
			HeaderText: p.HeaderText,
			FooterText: p.FooterText,
			Menu:       menu,
			Options:    flat,
		}
	}

	return p
}

// MarshalPayload renders the save payload as JSON. The payload contains only
// marshal-safe fields, so the error can not occur in practice.
func MarshalPayload(t Template) []byte {
	data, err := json.Marshal(BuildPayload(t))
	if err != nil {
		return []byte("{}")
	}
	return data
}
