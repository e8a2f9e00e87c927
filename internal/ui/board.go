package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lexiscope/internal/batch"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stateStyle = map[rowState]lipgloss.Style{
		rowQueued:  dimStyle,
		rowCache:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		rowRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		rowDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		rowCached:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		rowFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// Board renders the progress of a batch run, one row per file. Rows appear
// when their queued event arrives; the program quits once events is closed.
type Board struct {
	title   string
	events  <-chan batch.Event
	rows    []*row
	byName  map[string]*row
	spin    spinner.Model
	bar     progress.Model
	width   int
	closed  bool
	started time.Time
}

type batchMsg batch.Event

type closedMsg struct{}

func NewBoard(title string, events <-chan batch.Event) *Board {
	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	spin.Style = stateStyle[rowRunning]
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 60
	return &Board{
		title:   title,
		events:  events,
		byName:  make(map[string]*row),
		spin:    spin,
		bar:     bar,
		width:   80,
		started: time.Now(),
	}
}

func (b *Board) Init() tea.Cmd {
	return tea.Batch(b.spin.Tick, b.next())
}

func (b *Board) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-b.events
		if !ok {
			return closedMsg{}
		}
		return batchMsg(ev)
	}
}

func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case batchMsg:
		return b, tea.Batch(b.apply(batch.Event(msg)), b.next())
	case closedMsg:
		b.closed = true
		return b, tea.Quit
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			b.width = msg.Width
			b.bar.Width = max(msg.Width-20, 10)
		}
	case spinner.TickMsg:
		if !b.closed {
			var cmd tea.Cmd
			b.spin, cmd = b.spin.Update(msg)
			return b, cmd
		}
	case progress.FrameMsg:
		m, cmd := b.bar.Update(msg)
		b.bar = m.(progress.Model)
		return b, cmd
	}
	return b, nil
}

// apply routes ev to its row. Events for files never queued are dropped.
func (b *Board) apply(ev batch.Event) tea.Cmd {
	if ev.File == "" {
		return nil
	}
	r, ok := b.byName[ev.File]
	if !ok {
		if ev.Status != batch.StatusQueued {
			return nil
		}
		r = newRow(ev.File)
		b.byName[ev.File] = r
		b.rows = append(b.rows, r)
	}
	r.apply(ev)
	return b.bar.SetPercent(b.fraction())
}

func (b *Board) fraction() float64 {
	if len(b.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range b.rows {
		sum += r.fraction()
	}
	return sum / float64(len(b.rows))
}

func (b *Board) counts() (finished, failed int) {
	for _, r := range b.rows {
		if r.state.finished() {
			finished++
		}
		if r.state == rowFailed {
			failed++
		}
	}
	return finished, failed
}

func (b *Board) View() string {
	if len(b.rows) == 0 {
		return ""
	}
	finished, failed := b.counts()
	lead := b.spin.View()
	if b.closed {
		lead = "✓"
	}
	header := fmt.Sprintf("%s %s %d/%d", lead, b.title, finished, len(b.rows))
	if failed > 0 {
		header += fmt.Sprintf(", %d failed", failed)
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render(header))
	out.WriteString("\n")

	const stateWidth = 8
	nameWidth := max(b.width-stateWidth-len(pipeline)-16, 16)
	for _, r := range b.rows {
		state := stateStyle[r.state].Render(fmt.Sprintf("%-*s", stateWidth, r.state))
		line := fmt.Sprintf(" %s %s %s", r.strip(), state, fit(r.name, nameWidth))
		if r.note != "" {
			line += dimStyle.Render("  " + fit(r.note, 40))
		}
		out.WriteString(line)
		out.WriteString("\n")
	}

	if b.closed {
		out.WriteString(b.bar.ViewAs(1))
	} else {
		out.WriteString(b.bar.View())
	}
	fmt.Fprintf(&out, " %s\n", time.Since(b.started).Round(time.Millisecond))
	return out.String()
}
