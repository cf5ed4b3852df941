package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar CalendarTheme
	Tabs     TabTheme
	Footer   FooterTheme
	Panel    PanelTheme
	Log      LogTheme
}

// CalendarTheme styles the calendar grid. Day styles are layered in the
// order Day, Sunday/Saturday, Outside, Today, Selected, Focus.
type CalendarTheme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Sunday   lipgloss.Style
	Saturday lipgloss.Style
	Day      lipgloss.Style
	Outside  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Focus    lipgloss.Style
	Arrow    lipgloss.Style
}

// TabTheme styles the bottom tab bar.
type TabTheme struct {
	Bar      lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// FooterTheme groups styles used by the status/help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// LogTheme styles the debug event pane. Meta covers the timestamp and
// source prefix of each line.
type LogTheme struct {
	Frame   lipgloss.Style
	Heading lipgloss.Style
	Meta    lipgloss.Style
	Info    lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Sunday:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
			Saturday: lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF")),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Outside:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Today:    lipgloss.NewStyle().Bold(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Focus:    lipgloss.NewStyle().Reverse(true),
			Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Tabs: TabTheme{
			Bar: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), true, false, false, false).
				BorderForeground(lipgloss.Color("240")),
			Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Log: LogTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")),
			Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Bold(true),
			Meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
