package engine

import "fmt"

// PreviewModel is the render-ready projection of a template: everything the
// live preview pane needs, derived fresh on every change, no side effects.
type PreviewModel struct {
	HeaderKind      HeaderKind      `json:"headerKind"`
	HeaderText      string          `json:"headerText,omitempty"`
	HeaderMediaType string          `json:"headerMediaType,omitempty"`
	HeaderMediaURL  string          `json:"headerMediaUrl,omitempty"`
	BodyLines       []Line          `json:"bodyLines"`
	FooterText      string          `json:"footerText,omitempty"`
	Buttons         []PreviewButton `json:"buttons,omitempty"`
	Menu            *PreviewMenu    `json:"menu,omitempty"`
}

type PreviewButton struct {
	Kind  ButtonKind `json:"kind"`
	Label string     `json:"label"`
}

type PreviewMenu struct {
	ButtonLabel string           `json:"buttonLabel"`
	Sections    []PreviewSection `json:"sections"`
}

type PreviewSection struct {
	Title   string          `json:"title"`
	Options []PreviewOption `json:"options"`
}

type PreviewOption struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Project derives the preview for a template. Missing header, footer or
// interactive content simply renders nothing extra; untitled menu sections
// get a positional "Section N" display title.
func Project(t Template) PreviewModel {
	p := PreviewModel{
		HeaderKind: t.Header.Kind,
		BodyLines:  FormatBody(t.Body),
		FooterText: t.Footer,
	}

	switch t.Header.Kind {
	case HeaderText:
		p.HeaderText = t.Header.Text
	case HeaderMedia:
		p.HeaderMediaType = t.Header.MediaType
		p.HeaderMediaURL = t.Header.URL
	}

	switch t.Interactive {
	case InteractiveButtons:
		for _, b := range t.Buttons {
			p.Buttons = append(p.Buttons, PreviewButton{Kind: b.Kind, Label: b.Label})
		}
	case InteractiveMenu:
		if t.Menu == nil {
			break
		}
		menu := &PreviewMenu{ButtonLabel: t.Menu.ButtonLabel}
		if menu.ButtonLabel == "" {
			menu.ButtonLabel = DefaultMenuButtonLabel
		}
		for i, s := range t.Menu.Sections {
			title := s.Title
			if title == "" {
				title = fmt.Sprintf("Section %d", i+1)
			}
			section := PreviewSection{Title: title}
			for _, o := range s.Options {
				section.Options = append(section.Options, PreviewOption{Title: o.Title, Description: o.Description})
			}
			menu.Sections = append(menu.Sections, section)
		}
		p.Menu = menu
	}

	return p
}
