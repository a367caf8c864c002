package engine

import "time"

// MessageType classifies how a template is used by the bot runtime.
type MessageType string

const (
	TypeMessage MessageType = "message"
	TypeChoice  MessageType = "choice"
	TypeInput   MessageType = "input"
	TypeAPI     MessageType = "api"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusArchived Status = "Archived"
)

type HeaderKind string

const (
	HeaderNone  HeaderKind = "none"
	HeaderText  HeaderKind = "text"
	HeaderMedia HeaderKind = "media"
)

type InteractiveKind string

const (
	InteractiveNone    InteractiveKind = "none"
	InteractiveButtons InteractiveKind = "buttons"
	InteractiveMenu    InteractiveKind = "menu"
)

type ButtonKind string

const (
	ButtonQuickReply   ButtonKind = "quick_reply"
	ButtonVisitWebsite ButtonKind = "visit_website"
	ButtonCallPhone    ButtonKind = "call_phone"
)

// WhatsApp platform limits for interactive messages.
const (
	MaxButtonLabelLen  = 24
	MaxQuickReplies    = 3
	MaxCTAButtons      = 2
	MaxMenuOptions     = 10
	MaxSectionTitleLen = 24
	MaxOptionTitleLen  = 24
	MaxOptionDescLen   = 72
	MaxMenuButtonLen   = 24
)

type Button struct {
	ID    string
	Kind  ButtonKind
	Label string
	URL   string
	Phone string
}

type MenuOption struct {
	ID          string
	Title       string
	Description string
}

type MenuSection struct {
	ID      string
	Title   string
	Options []MenuOption
}

type Menu struct {
	ButtonLabel string
	Sections    []MenuSection
}

// OptionCount is the total number of options across all sections.
func (m *Menu) OptionCount() int {
	if m == nil {
		return 0
	}
	total := 0
	for _, s := range m.Sections {
		total += len(s.Options)
	}
	return total
}

type Header struct {
	Kind      HeaderKind
	Text      string
	MediaType string // image, video or document
	URL       string
}

// Template is the canonical in-memory model every legacy persisted shape is
// normalized into. Exactly one of Buttons/Menu is populated, selected by
// Interactive; the state machine keeps that invariant on every mutation.
type Template struct {
	Title       string
	Type        MessageType
	Status      Status
	Language    string
	Body        string
	Header      Header
	Footer      string
	ExpiresAt   *time.Time
	Category    string
	Interactive InteractiveKind
	Buttons     []Button
	Menu        *Menu
	Tags        []string
	IsDeleted   bool
}

// clampText truncates to max runes; normalization and write-time patches clamp
// instead of rejecting.
func clampText(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}

// MergeTags appends extra names onto existing, keeping first occurrence and
// the exact casing entered.
func MergeTags(existing []string, extra []string) []string {
	seen := make(map[string]bool, len(existing)+len(extra))
	merged := make([]string, 0, len(existing)+len(extra))
	for _, group := range [][]string{existing, extra} {
		for _, tag := range group {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
