package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZacxDev/itemsort/runner"
)

const banner = "****************************************************"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Render formats the results as the plain testcase report: a header per
// scenario, the sorted payloads (or the sorting error), a pass/fail banner
// and a closing summary line.
func Render(results []*runner.Result) string {
	var sb strings.Builder

	for i, result := range results {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("Testcase %d: %s", i+1, title(result))))
		sb.WriteString("\n\n")
		sb.WriteString(Details(result))
		sb.WriteString("\n")
		sb.WriteString(banner + "  " + statusStyle(result.Status).Render(string(result.Status)))
		sb.WriteString("\n\n")
	}

	sb.WriteString(Summary(results))
	sb.WriteString("\n")
	return sb.String()
}

// Details lists the sorted payloads of a result, one tab indented line each.
// When sorting failed the error message is shown instead, and a failed
// scenario also gets the reason it failed.
func Details(result *runner.Result) string {
	var sb strings.Builder

	if result.Err != nil {
		sb.WriteString("\t" + errorStyle.Render("Error: "+result.Err.Error()) + "\n")
	} else {
		for _, it := range result.Sorted {
			sb.WriteString("\t" + it.Payload() + "\n")
		}
	}

	if result.Status == runner.StatusFailed && result.Reason != "" {
		sb.WriteString("\t" + failedStyle.Render("Reason: "+result.Reason) + "\n")
	}

	return sb.String()
}

// Summary is the closing line of a report.
func Summary(results []*runner.Result) string {
	failed := 0
	for _, result := range results {
		if result.Status == runner.StatusFailed {
			failed++
		}
	}

	if failed == 0 {
		return "All testcases completed successfully."
	}
	return fmt.Sprintf("%d of %d testcases failed.", failed, len(results))
}

func title(result *runner.Result) string {
	if result.Scenario.Description != "" {
		return result.Scenario.Description
	}
	return result.Scenario.Name
}

func statusStyle(status runner.Status) lipgloss.Style {
	if status == runner.StatusFailed {
		return failedStyle
	}
	return passedStyle
}
