package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages sent from the search goroutine to the program.
type (
	passStartedMsg struct {
		selector string
		index    int
		total    int
	}
	fileScannedMsg struct{ path string }
	fileSkippedMsg struct {
		path string
		err  error
	}
	passCompletedMsg struct {
		selector string
		matches  int
	}
	searchDoneMsg struct{ err error }
)

// SearchModel renders the progress of a reference search.
type SearchModel struct {
	title    string
	spinner  spinner.Model
	bar      progress.Model
	keys     KeyMap
	onCancel func()

	selector  string
	passIndex int
	passTotal int
	completed int
	current   string
	scanned   int
	skipped   int
	matched   int

	done      bool
	cancelled bool
	err       error
}

// NewSearchModel creates the model. onCancel is invoked once when the user
// asks to stop; it may be nil.
func NewSearchModel(title string, passes int, onCancel func()) SearchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return SearchModel{
		title:     title,
		spinner:   s,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		keys:      DefaultKeyMap(),
		onCancel:  onCancel,
		passTotal: passes,
	}
}

// Init implements tea.Model.
func (m SearchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && !m.cancelled && !m.done {
			m.cancelled = true
			if m.onCancel != nil {
				m.onCancel()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		if w := msg.Width - 4; w > 10 && w < 80 {
			m.bar.Width = w
		}
		return m, nil

	case passStartedMsg:
		m.selector = msg.selector
		m.passIndex = msg.index
		m.passTotal = msg.total
		return m, nil

	case fileScannedMsg:
		m.scanned++
		m.current = msg.path
		return m, nil

	case fileSkippedMsg:
		m.skipped++
		m.current = msg.path
		return m, nil

	case passCompletedMsg:
		m.completed++
		m.matched += msg.matches
		return m, nil

	case searchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Percent is the share of passes completed.
func (m SearchModel) Percent() float64 {
	if m.passTotal <= 0 {
		return 1
	}
	return float64(m.completed) / float64(m.passTotal)
}

// View implements tea.Model.
func (m SearchModel) View() string {
	if m.done {
		switch {
		case m.err != nil:
			return ErrorStyle.Render(fmt.Sprintf("%s %s: %v", SymbolCross, m.title, m.err)) + "\n"
		default:
			return SuccessStyle.Render(fmt.Sprintf("%s %s: %d reference(s) in %d file(s) scanned", SymbolCheck, m.title, m.matched, m.scanned)) + "\n"
		}
	}

	var sb strings.Builder
	sb.WriteString(m.spinner.View())
	sb.WriteString(" ")
	sb.WriteString(TitleStyle.Render(m.title))
	if m.selector != "" {
		sb.WriteString(" ")
		sb.WriteString(SelectorStyle.Render(fmt.Sprintf("%s pass %d/%d (%s)", SymbolArrowRight, m.passIndex+1, m.passTotal, m.selector)))
	}
	sb.WriteString("\n")
	sb.WriteString(m.bar.ViewAs(m.Percent()))
	sb.WriteString("\n")

	counts := fmt.Sprintf("%d scanned %s %d matched", m.scanned, SymbolBullet, m.matched)
	if m.skipped > 0 {
		counts += fmt.Sprintf(" %s %d skipped", SymbolBullet, m.skipped)
	}
	sb.WriteString(CountStyle.Render(counts))
	if m.current != "" {
		sb.WriteString(" ")
		sb.WriteString(CountStyle.Render(path.Base(m.current)))
	}
	sb.WriteString("\n")

	if m.cancelled {
		sb.WriteString(WarningStyle.Render("cancelling..."))
	} else {
		sb.WriteString(HelpStyle.Render(m.keys.HelpText()))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Done reports whether the search finished.
func (m SearchModel) Done() bool { return m.done }

// Cancelled reports whether the user asked to stop.
func (m SearchModel) Cancelled() bool { return m.cancelled }

// Err is the error the search finished with.
func (m SearchModel) Err() error { return m.err }
