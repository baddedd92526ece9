package models

import (
	"fmt"
	"strings"
)

// TicketWidth is the printable width of a ticket in characters
const TicketWidth = 30

var ticketRule = strings.Repeat("=", TicketWidth)

// TextSection is a block of lines wrapped to a fixed width
type TextSection struct {
	width int
	lines []string
}

// NewTextSection creates an empty section of the given width
func NewTextSection(width int) *TextSection {
	return &TextSection{width: width}
}

// AppendText adds text line by line, wrapping lines longer than the section width.
// Width is counted in characters, not bytes.
func (s *TextSection) AppendText(text string) {
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for s.width > 0 && len(runes) > s.width {
			s.lines = append(s.lines, string(runes[:s.width]))
			runes = runes[s.width:]
		}
		s.lines = append(s.lines, string(runes))
	}
}

// Lines returns the wrapped lines
func (s *TextSection) Lines() []string {
	return s.lines
}

func (s *TextSection) String() string {
	return strings.Join(s.lines, "\n")
}

// TextDocument is a printable ticket image: header, content and footer
type TextDocument struct {
	Header  *TextSection
	Content *TextSection
	Footer  *TextSection
}

func (d *TextDocument) String() string {
	var parts []string
	for _, section := range []*TextSection{d.Header, d.Content, d.Footer} {
		if section != nil && len(section.lines) > 0 {
			parts = append(parts, section.String())
		}
	}
	return strings.Join(parts, "\n")
}

// TextDocument renders the ticket as it would be reprinted
func (t *Ticket) TextDocument() *TextDocument {
	header := NewTextSection(TicketWidth)
	header.AppendText(t.header())

	content := NewTextSection(TicketWidth)
	for _, board := range t.boards {
		content.AppendText(board.String())
	}

	footer := NewTextSection(TicketWidth)
	footer.AppendText(t.footer())

	return &TextDocument{Header: header, Content: content, Footer: footer}
}

func (t *Ticket) String() string {
	return t.TextDocument().String()
}

func (t *Ticket) header() string {
	draws := "DRAW"
	if t.NumberOfDraws > 1 {
		draws = "DRAWS"
	}
	return strings.Join([]string{
		ticketRule,
		strings.ToUpper(t.gameDescription()),
		"",
		fmt.Sprintf("%d %s", t.NumberOfDraws, draws),
	}, "\n")
}

func (t *Ticket) footer() string {
	lines := []string{"SEE REVERSE"}
	if cost := t.TicketCost(); cost.IsZero() {
		lines = append(lines, "FREE PLAY")
	} else {
		lines = append(lines, "$  "+cost.StringFixed(2))
	}
	lines = append(lines,
		"SYSID "+t.Retailer.String(),
		"",
		"X_____________________________",
		"PRINT YOUR NAME HERE",
		"",
		"TICKET TAG",
	)
	return strings.Join(lines, "\n")
}

func (t *Ticket) gameDescription() string {
	if t.Game == nil {
		return ""
	}
	return t.Game.Description
}

func (t *Ticket) gameName() string {
	if t.Game == nil {
		return ""
	}
	return t.Game.Name
}
