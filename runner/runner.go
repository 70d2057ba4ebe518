package runner

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/ZacxDev/itemsort/config"
	"github.com/ZacxDev/itemsort/item"
	"github.com/ZacxDev/itemsort/sorter"
)

// Status is the verdict on a scenario.
type Status string

const (
	StatusPassed Status = "Passed"
	StatusFailed Status = "Failed"
)

// Result is the outcome of one scenario. Err holds the sorting error, if
// any, whether or not the scenario expected it.
type Result struct {
	Scenario *config.Scenario
	Sorted   []item.Item[string]
	Err      error
	Status   Status
	Reason   string
	Duration time.Duration
}

// ScenarioRunner sorts scenarios and checks each result against its expectation.
type ScenarioRunner struct {
	logger *log.Logger
	newDAG func() sorter.DAGManager[string]
}

// New returns a runner that logs through logger.
func New(logger *log.Logger) *ScenarioRunner {
	return &ScenarioRunner{
		logger: logger,
		newDAG: sorter.NewDAGManager[string],
	}
}

// Run executes the scenarios in order. Every scenario is run even when an
// earlier one fails; the returned error reports how many failed.
func (r *ScenarioRunner) Run(scenarios []*config.Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	failedCount := 0

	for _, scenario := range scenarios {
		result := r.RunScenario(scenario)
		if result.Status == StatusFailed {
			failedCount++
		}
		results = append(results, result)
	}

	if failedCount > 0 {
		return results, errors.Errorf("%d of %d scenarios failed", failedCount, len(scenarios))
	}
	return results, nil
}

func (r *ScenarioRunner) RunScenario(scenario *config.Scenario) *Result {
	r.logger.Debug("running scenario", "scenario", scenario.Name, "items", len(scenario.Items))

	startTime := time.Now()
	dag := r.newDAG()
	for _, it := range scenario.Items {
		dag.AddItem(it)
	}
	sorted, err := dag.TopologicalSort()

	result := &Result{
		Scenario: scenario,
		Sorted:   sorted,
		Err:      err,
		Duration: time.Since(startTime),
	}
	result.Status, result.Reason = evaluate(scenario, sorted, err)

	if result.Status == StatusFailed {
		r.logger.Error("scenario failed", "scenario", scenario.Name, "reason", result.Reason)
	} else {
		r.logger.Info("scenario passed", "scenario", scenario.Name, "outcome", outcome(err))
	}

	return result
}

func evaluate(scenario *config.Scenario, sorted []item.Item[string], err error) (Status, string) {
	want := expectedError(scenario.Expect)

	if want == nil {
		if err != nil {
			return StatusFailed, fmt.Sprintf("unexpected error: %v", err)
		}
		if len(sorted) != len(scenario.Items) {
			return StatusFailed, fmt.Sprintf("sorted %d of %d items", len(sorted), len(scenario.Items))
		}
		if err := sorter.Validate(sorted); err != nil {
			return StatusFailed, err.Error()
		}
		return StatusPassed, ""
	}

	if err == nil {
		return StatusFailed, fmt.Sprintf("expected %s, got an ordering", scenario.Expect)
	}
	if !errors.Is(err, want) {
		return StatusFailed, fmt.Sprintf("expected %s, got: %v", scenario.Expect, err)
	}
	return StatusPassed, ""
}

func expectedError(expect config.Expectation) error {
	switch expect {
	case config.ExpectCyclicDependency:
		return sorter.ErrCyclicDependency
	case config.ExpectConflictingDuplicate:
		return sorter.ErrConflictingDuplicate
	case config.ExpectUnknownDependency:
		return sorter.ErrUnknownDependency
	default:
		return nil
	}
}

func outcome(err error) string {
	if err == nil {
		return "sorted"
	}
	return err.Error()
}
