package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ZacxDev/itemsort/item"
)

type yamlScenario struct {
	Description string     `yaml:"description"`
	Expect      string     `yaml:"expect"`
	Items       []yamlItem `yaml:"items"`
}

type yamlItem struct {
	Data string `yaml:"data"`
	Name string `yaml:"name"`
	// Deps stays a node so that an absent key can be told apart from an
	// empty list, and a comma separated string is accepted too.
	Deps yaml.Node `yaml:"deps"`
}

// YAMLLoader reads scenario files of the form
//
//	description: Same dependency listed twice in same item
//	expect: ok
//	items:
//	  - data: s80 dependsOn s50,s50,s50
//	    name: s80
//	    deps: [s50, s50, s50]
//	  - data: s50
//	    name: s50
type YAMLLoader struct{}

func (YAMLLoader) Load(path string, src []byte) (*Scenario, error) {
	var raw yamlScenario
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode YAML")
	}

	expect, err := ParseExpectation(raw.Expect)
	if err != nil {
		return nil, err
	}

	scenario := &Scenario{
		Name:        scenarioName(path),
		Path:        path,
		Description: raw.Description,
		Expect:      expect,
		Items:       make([]item.Item[string], 0, len(raw.Items)),
	}

	for i, entry := range raw.Items {
		deps, err := decodeDependencies(&entry.Deps)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse item %d", i)
		}
		scenario.Items = append(scenario.Items, item.New(entry.Name, entry.Data, deps))
	}

	return scenario, nil
}

// decodeDependencies maps an absent or null node to nil. A zero Kind means
// the key was not present.
func decodeDependencies(node *yaml.Node) ([]string, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return item.ParseList(node.Value), nil
	case yaml.SequenceNode:
		deps := make([]string, 0, len(node.Content))
		if err := node.Decode(&deps); err != nil {
			return nil, errors.Wrap(ErrInvalidScenario, "deps must be a list of names")
		}
		return deps, nil
	default:
		return nil, errors.Wrapf(ErrInvalidScenario, "deps must be a list or a string, got %s", node.Tag)
	}
}
