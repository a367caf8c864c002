package engine

import (
	"regexp"
	"strings"
)

// SegmentStyle mirrors WhatsApp inline markup: *bold*, _italic_, ~strike~,
// `mono` and ```mono blocks```.
type SegmentStyle string

const (
	StylePlain  SegmentStyle = "plain"
	StyleBold   SegmentStyle = "bold"
	StyleItalic SegmentStyle = "italic"
	StyleStrike SegmentStyle = "strike"
	StyleMono   SegmentStyle = "mono"
)

type Segment struct {
	Style SegmentStyle `json:"style"`
	Text  string       `json:"text"`
}

// Line is the ordered left-to-right segment sequence of one source line.
type Line []Segment

// nbsp keeps empty source lines visible as a blank row in the preview.
const nbsp = "\u00a0"

type stylePass struct {
	style SegmentStyle
	re    *regexp.Regexp
}

// stylePasses run in this exact order. Each pass only re-scans plain segments,
// so text claimed by an earlier pass (e.g. a code span) is opaque to the rest.
var stylePasses = []stylePass{
	{StyleMono, regexp.MustCompile("```(.+?)```")},
	{StyleMono, regexp.MustCompile("`(.+?)`")},
	{StyleBold, regexp.MustCompile(`\*(.+?)\*`)},
	{StyleItalic, regexp.MustCompile(`_(.+?)_`)},
	{StyleStrike, regexp.MustCompile(`~(.+?)~`)},
}

// FormatBody splits text on newlines and tokenizes each line into styled
// segments. Unpaired delimiters are left as literal text; the function never
// fails, whatever the input.
func FormatBody(text string) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	for _, raw := range rawLines {
		lines = append(lines, formatLine(raw))
	}
	return lines
}

func formatLine(raw string) Line {
	if raw == "" {
		return Line{{Style: StylePlain, Text: nbsp}}
	}
	line := Line{{Style: StylePlain, Text: raw}}
	for _, pass := range stylePasses {
		line = applyPass(line, pass)
	}
	return line
}

func applyPass(line Line, pass stylePass) Line {
	out := make(Line, 0, len(line))
	for _, seg := range line {
		if seg.Style != StylePlain {
			out = append(out, seg)
			continue
		}
		out = append(out, matchSegment(seg.Text, pass)...)
	}
	return out
}

// matchSegment splits one plain span around the pass's non-greedy
// delimiter...delimiter matches, preserving source order.
func matchSegment(text string, pass stylePass) Line {
	matches := pass.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return Line{{Style: StylePlain, Text: text}}
	}

	segs := make(Line, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segs = append(segs, Segment{Style: StylePlain, Text: text[last:m[0]]})
		}
		segs = append(segs, Segment{Style: pass.style, Text: text[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(text) {
		segs = append(segs, Segment{Style: StylePlain, Text: text[last:]})
	}
	return segs
}
