package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slices"

	"github.com/ZacxDev/itemsort/runner"
)

const helpLine = "Press q to quit, enter/space to toggle details, up/down or j/k to navigate"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle  = lipgloss.NewStyle().Bold(true)
)

// Browser is the interactive results view. It lists every scenario with its
// status and shows the sorted order or error of the selected one on demand.
type Browser struct {
	results     []*runner.Result
	selectedIdx int
	showDetails bool
	done        bool

	listView   viewport.Model
	detailView viewport.Model
}

// NewBrowser starts with the first failed scenario selected, or the first
// scenario when all of them passed.
func NewBrowser(results []*runner.Result) *Browser {
	b := &Browser{
		results:    results,
		listView:   viewport.New(160, 40),
		detailView: viewport.New(160, 20),
	}
	if idx := slices.IndexFunc(results, func(r *runner.Result) bool {
		return r.Status == runner.StatusFailed
	}); idx >= 0 {
		b.selectedIdx = idx
	}
	b.refresh()
	return b
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			b.done = true
			return b, tea.Quit
		case "up", "k":
			if b.showDetails {
				b.detailView, cmd = b.detailView.Update(msg)
				cmds = append(cmds, cmd)
			} else if len(b.results) > 0 {
				b.selectedIdx = (b.selectedIdx - 1 + len(b.results)) % len(b.results)
			}
		case "down", "j":
			if b.showDetails {
				b.detailView, cmd = b.detailView.Update(msg)
				cmds = append(cmds, cmd)
			} else if len(b.results) > 0 {
				b.selectedIdx = (b.selectedIdx + 1) % len(b.results)
			}
		case "enter", " ":
			b.showDetails = !b.showDetails
		case "esc":
			b.showDetails = false
		}
	case tea.WindowSizeMsg:
		b.listView.Width = msg.Width
		b.listView.Height = msg.Height - 1
		b.detailView.Width = msg.Width
		b.detailView.Height = msg.Height / 2
	}

	b.refresh()
	return b, tea.Batch(cmds...)
}

func (b *Browser) View() string {
	if b.done {
		return "Exiting...\n"
	}

	var sb strings.Builder
	sb.WriteString(b.listView.View())
	if b.showDetails {
		sb.WriteString("\n\nDetails:\n")
		sb.WriteString(b.detailView.View())
	}
	sb.WriteString("\n" + helpStyle.Render(helpLine))
	return sb.String()
}

// Selected returns the highlighted result, or nil when there are none.
func (b *Browser) Selected() *runner.Result {
	if b.selectedIdx < len(b.results) {
		return b.results[b.selectedIdx]
	}
	return nil
}

func (b *Browser) refresh() {
	b.listView.SetContent(b.statusView())
	if b.showDetails {
		if selected := b.Selected(); selected != nil {
			b.detailView.SetContent(Details(selected))
		} else {
			b.detailView.SetContent("No scenarios were run")
		}
	}
}

func (b *Browser) statusView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Item Sort Scenarios"))
	sb.WriteString("\n\n")

	for i, result := range b.results {
		prefix := "  "
		if i == b.selectedIdx {
			prefix = "> "
		}

		sb.WriteString(fmt.Sprintf(
			"%s%-28s | %-10s | %-10s | Items: %d\n",
			prefix,
			result.Scenario.Name,
			statusStyle(result.Status).Render(string(result.Status)),
			result.Duration.Round(time.Microsecond),
			len(result.Scenario.Items),
		))
	}

	sb.WriteString("\n" + Summary(b.results))
	return sb.String()
}
