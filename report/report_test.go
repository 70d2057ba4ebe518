package report

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacxDev/itemsort/config"
	"github.com/ZacxDev/itemsort/item"
	"github.com/ZacxDev/itemsort/runner"
	"github.com/ZacxDev/itemsort/sorter"
)

func passed(name, description string, payloads ...string) *runner.Result {
	sorted := make([]item.Item[string], 0, len(payloads))
	for _, p := range payloads {
		sorted = append(sorted, item.Anonymous(p))
	}
	return &runner.Result{
		Scenario: &config.Scenario{Name: name, Description: description, Items: sorted},
		Sorted:   sorted,
		Status:   runner.StatusPassed,
	}
}

func failed(name string, err error, reason string) *runner.Result {
	return &runner.Result{
		Scenario: &config.Scenario{Name: name},
		Err:      err,
		Status:   runner.StatusFailed,
		Reason:   reason,
	}
}

func TestRender_AllPassed(t *testing.T) {
	out := Render([]*runner.Result{
		passed("01", "Normal execution", "s50", "s80 dependsOn s50"),
		passed("10", "Empty set of items"),
	})

	assert.Contains(t, out, "Testcase 1: Normal execution")
	assert.Contains(t, out, "Testcase 2: Empty set of items")
	assert.Contains(t, out, "\ts50\n\ts80 dependsOn s50\n")
	assert.Equal(t, 2, strings.Count(out, banner))
	assert.Contains(t, out, "Passed")
	assert.True(t, strings.HasSuffix(out, "All testcases completed successfully.\n"))
}

func TestRender_Failures(t *testing.T) {
	err := &sorter.CyclicDependencyError{Sorted: 1, Total: 3}
	out := Render([]*runner.Result{
		passed("01", "ok"),
		failed("02_cyclic", err, "expected ok, got an error"),
	})

	assert.Contains(t, out, "Testcase 2: 02_cyclic", "name is used when there is no description")
	assert.Contains(t, out, "Error: cyclic references detected in list of items")
	assert.Contains(t, out, "Reason: expected ok, got an error")
	assert.Contains(t, out, "Failed")
	assert.True(t, strings.HasSuffix(out, "1 of 2 testcases failed.\n"))
}

func TestDetails_ExpectedErrorHasNoReason(t *testing.T) {
	result := failed("08", &sorter.UnknownDependencyError{Dependent: "s60", Missing: "s40"}, "")
	result.Status = runner.StatusPassed

	details := Details(result)
	assert.Contains(t, details, `"s60" depends on "s40"`)
	assert.NotContains(t, details, "Reason")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "All testcases completed successfully.", Summary(nil))
	assert.Equal(t, "2 of 2 testcases failed.", Summary([]*runner.Result{
		failed("a", nil, "x"), failed("b", nil, "y"),
	}))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBrowser_Navigation(t *testing.T) {
	b := NewBrowser([]*runner.Result{
		passed("first", "", "a"),
		passed("second", "", "b"),
		passed("third", "", "c"),
	})
	require.Equal(t, "first", b.Selected().Scenario.Name)

	b.Update(key("j"))
	assert.Equal(t, "second", b.Selected().Scenario.Name)

	b.Update(key("k"))
	b.Update(key("k"))
	assert.Equal(t, "third", b.Selected().Scenario.Name, "navigation wraps around")

	view := b.View()
	assert.Contains(t, view, "> third")
	assert.Contains(t, view, "All testcases completed successfully.")
}

func TestBrowser_StartsOnFirstFailure(t *testing.T) {
	b := NewBrowser([]*runner.Result{
		passed("first", ""),
		failed("second", sorter.ErrConflictingDuplicate, "boom"),
	})
	assert.Equal(t, "second", b.Selected().Scenario.Name)
}

func TestBrowser_DetailsToggleAndQuit(t *testing.T) {
	b := NewBrowser([]*runner.Result{passed("only", "", "s50 payload")})

	b.Update(key("enter"))
	assert.True(t, b.showDetails)
	assert.Contains(t, b.View(), "s50 payload")

	b.Update(key("j"))
	assert.Equal(t, "only", b.Selected().Scenario.Name, "keys scroll the details while they are shown")

	b.Update(key("esc"))
	assert.False(t, b.showDetails)

	_, cmd := b.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Exiting...\n", b.View())
}

func TestBrowser_Empty(t *testing.T) {
	b := NewBrowser(nil)
	assert.Nil(t, b.Selected())

	b.Update(key("j"))
	b.Update(key("enter"))
	assert.Contains(t, b.View(), "No scenarios were run")
}
