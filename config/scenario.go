package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ZacxDev/itemsort/fs"
	"github.com/ZacxDev/itemsort/item"
)

var (
	ErrNoScenario        = errors.New("no scenario defined")
	ErrInvalidScenario   = errors.New("invalid scenario")
	ErrUnsupportedFormat = errors.New("unsupported scenario format")
)

// Expectation is the outcome a scenario is expected to produce.
type Expectation string

const (
	ExpectOK                   Expectation = "ok"
	ExpectCyclicDependency     Expectation = "cyclic_dependency"
	ExpectConflictingDuplicate Expectation = "conflicting_duplicate"
	ExpectUnknownDependency    Expectation = "unknown_dependency"
)

// ParseExpectation accepts the known expectations; an empty string means ok.
func ParseExpectation(s string) (Expectation, error) {
	switch e := Expectation(strings.TrimSpace(s)); e {
	case "":
		return ExpectOK, nil
	case ExpectOK, ExpectCyclicDependency, ExpectConflictingDuplicate, ExpectUnknownDependency:
		return e, nil
	default:
		return "", errors.Wrapf(ErrInvalidScenario, "unknown expectation %q", s)
	}
}

// Scenario is a named list of items to sort together with the expected result.
// Payloads are the item descriptions printed by the report.
type Scenario struct {
	Name        string
	Path        string
	Description string
	Expect      Expectation
	Items       []item.Item[string]
}

// Loader turns the content of a scenario file into a Scenario.
type Loader interface {
	Load(path string, src []byte) (*Scenario, error)
}

// LoaderFor picks a loader by file extension.
func LoaderFor(filesystem fs.FileSystem, path string) (Loader, error) {
	return loaderFor(NewStarlarkLoader(filesystem), path)
}

func loaderFor(star *StarlarkLoader, path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".star":
		return star, nil
	case ".yaml", ".yml":
		return YAMLLoader{}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// LoadScenario reads and parses a single scenario file.
func LoadScenario(filesystem fs.FileSystem, path string) (*Scenario, error) {
	return loadScenario(filesystem, NewStarlarkLoader(filesystem), path)
}

func loadScenario(filesystem fs.FileSystem, star *StarlarkLoader, path string) (*Scenario, error) {
	loader, err := loaderFor(star, path)
	if err != nil {
		return nil, err
	}

	src, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario %s", path)
	}

	scenario, err := loader.Load(path, src)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load scenario %s", path)
	}
	return scenario, nil
}

// LoadScenarios loads every scenario file matching pattern, sorted by path.
// Starlark files whose name starts with an underscore are shared modules for
// load() and are skipped. All Starlark files share one module cache, so a
// module is executed once per call.
func LoadScenarios(filesystem fs.FileSystem, pattern string) ([]*Scenario, error) {
	matches, err := filesystem.DoublestarGlob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand scenario pattern %s", pattern)
	}
	sort.Strings(matches)

	star := NewStarlarkLoader(filesystem)
	scenarios := make([]*Scenario, 0, len(matches))
	for _, path := range matches {
		if strings.HasPrefix(filepath.Base(path), "_") {
			continue
		}
		scenario, err := loadScenario(filesystem, star, path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

func scenarioName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
