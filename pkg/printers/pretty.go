package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calnav/pkg/calendar"
)

// PrettyPrint renders calendar snapshots for the terminal.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// NewLine writes an empty line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title writes a bold, underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Snapshot prints s in the layout of its mode.
func (pp *PrettyPrint) Snapshot(s calendar.Snapshot) {
	switch s.Mode {
	case calendar.ModeWeek:
		pp.Week(s)
	default:
		pp.Month(s)
	}
}

type jsonCell struct {
	Date     calendar.Date `json:"date"`
	Today    bool          `json:"today,omitempty"`
	Outside  bool          `json:"outside,omitempty"`
	Selected bool          `json:"selected,omitempty"`
}

type jsonSnapshot struct {
	Mode     string         `json:"mode"`
	Anchor   calendar.Date  `json:"anchor"`
	Selected *calendar.Date `json:"selected,omitempty"`
	Today    calendar.Date  `json:"today"`
	Cells    []jsonCell     `json:"cells"`
}

// JSON writes s as an indented JSON document.
func (pp *PrettyPrint) JSON(s calendar.Snapshot) error {
	doc := jsonSnapshot{
		Mode:     s.Mode.String(),
		Anchor:   s.Anchor,
		Selected: s.Selected,
		Today:    s.Today,
		Cells:    make([]jsonCell, 0, len(s.Cells)),
	}
	for _, c := range s.Cells {
		doc.Cells = append(doc.Cells, jsonCell(c))
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("printers: marshal snapshot: %w", err)
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
