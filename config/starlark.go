package config

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"

	"github.com/ZacxDev/itemsort/fs"
	"github.com/ZacxDev/itemsort/item"
)

// ModuleCache stores loaded Starlark modules. Scenarios are loaded on a
// single goroutine, so it is not safe for concurrent use.
type ModuleCache struct {
	modules map[string]starlark.StringDict
	loading map[string]bool
}

// NewModuleCache creates a new ModuleCache
func NewModuleCache() *ModuleCache {
	return &ModuleCache{
		modules: make(map[string]starlark.StringDict),
		loading: make(map[string]bool),
	}
}

// Get retrieves a module from the cache
func (mc *ModuleCache) Get(key string) (starlark.StringDict, bool) {
	module, ok := mc.modules[key]
	return module, ok
}

// Set stores a module in the cache
func (mc *ModuleCache) Set(key string, module starlark.StringDict) {
	mc.modules[key] = module
}

// begin marks key as being loaded and reports false if it already was,
// which means the load() statements form a cycle.
func (mc *ModuleCache) begin(key string) bool {
	if mc.loading[key] {
		return false
	}
	mc.loading[key] = true
	return true
}

func (mc *ModuleCache) end(key string) {
	delete(mc.loading, key)
}

const (
	localCache = "moduleCache"
	localFS    = "fileSystem"
)

// predeclared holds the builtins visible to every scenario file and module.
var predeclared = starlark.StringDict{
	"item": starlark.NewBuiltin("item", itemBuiltin),
}

// LoadModule is a custom load function for Starlark that implements caching.
// Module paths are resolved relative to the scenario being executed.
func LoadModule(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	cache := thread.Local(localCache).(*ModuleCache)
	filesystem := thread.Local(localFS).(fs.FileSystem)

	filename := module
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(filepath.Dir(thread.Name), filename)
	}

	// Check if the module is already cached
	if cachedModule, ok := cache.Get(filename); ok {
		return cachedModule, nil
	}
	if !cache.begin(filename) {
		return nil, errors.Errorf("cycle in load graph at %s", module)
	}
	defer cache.end(filename)

	src, err := filesystem.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read module %s", module)
	}

	moduleThread := &starlark.Thread{Name: filename, Load: LoadModule}
	moduleThread.SetLocal(localCache, cache)
	moduleThread.SetLocal(localFS, filesystem)

	globals, err := starlark.ExecFile(moduleThread, filename, src, predeclared)
	if err != nil {
		return nil, err
	}

	cache.Set(filename, globals)

	return globals, nil
}

// StarlarkLoader executes scenario files written in Starlark. A file defines
// a global dict named "scenario":
//
//	scenario = {
//	    "description": "Duplicate items with no dependencies",
//	    "expect": "ok",
//	    "items": [
//	        item("s100 dependsOn s50,s60", name = "s100", deps = "s50,s60"),
//	        item("unnamed1"),
//	    ],
//	}
type StarlarkLoader struct {
	fs    fs.FileSystem
	cache *ModuleCache
}

func NewStarlarkLoader(filesystem fs.FileSystem) *StarlarkLoader {
	return &StarlarkLoader{fs: filesystem, cache: NewModuleCache()}
}

func (l *StarlarkLoader) Load(path string, src []byte) (*Scenario, error) {
	thread := &starlark.Thread{
		Name: path,
		Load: LoadModule,
	}
	thread.SetLocal(localCache, l.cache)
	thread.SetLocal(localFS, l.fs)

	globals, err := starlark.ExecFile(thread, path, src, predeclared)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Starlark script")
	}

	value, ok := globals["scenario"]
	if !ok {
		return nil, errors.Wrap(ErrNoScenario, "global 'scenario' object not found")
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidScenario, "global 'scenario' is %s, not a dict", value.Type())
	}

	return parseScenario(path, dict)
}

func parseScenario(path string, dict *starlark.Dict) (*Scenario, error) {
	scenario := &Scenario{Name: scenarioName(path), Path: path}

	if description, ok, err := getStringValue(dict, "description"); err != nil {
		return nil, err
	} else if ok {
		scenario.Description = description
	}

	expect, _, err := getStringValue(dict, "expect")
	if err != nil {
		return nil, err
	}
	if scenario.Expect, err = ParseExpectation(expect); err != nil {
		return nil, err
	}

	value, found, err := dict.Get(starlark.String("items"))
	if err != nil {
		return nil, err
	}
	if !found || value == starlark.None {
		scenario.Items = []item.Item[string]{}
		return scenario, nil
	}

	list, ok := value.(*starlark.List)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidScenario, "expected list for key items, got %s", value.Type())
	}

	scenario.Items = make([]item.Item[string], 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		entry, ok := list.Index(i).(*starlark.Dict)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidScenario, "item %d is %s, not a dict", i, list.Index(i).Type())
		}
		it, err := parseItem(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse item %d", i)
		}
		scenario.Items = append(scenario.Items, it)
	}

	return scenario, nil
}

func parseItem(dict *starlark.Dict) (item.Item[string], error) {
	data, _, err := getStringValue(dict, "data")
	if err != nil {
		return item.Item[string]{}, err
	}

	name, _, err := getStringValue(dict, "name")
	if err != nil {
		return item.Item[string]{}, err
	}

	deps, err := getDependencies(dict, "deps")
	if err != nil {
		return item.Item[string]{}, err
	}

	return item.New(name, data, deps), nil
}

// itemBuiltin implements item(data, name = "", deps = None). deps is either a
// comma separated string or a list of names.
func itemBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		data, name starlark.String
		deps       starlark.Value = starlark.None
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "data", &data, "name?", &name, "deps?", &deps); err != nil {
		return nil, err
	}

	dict := starlark.NewDict(3)
	if err := dict.SetKey(starlark.String("data"), data); err != nil {
		return nil, err
	}
	if err := dict.SetKey(starlark.String("name"), name); err != nil {
		return nil, err
	}
	if deps != starlark.None {
		if err := dict.SetKey(starlark.String("deps"), deps); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

func getStringValue(dict *starlark.Dict, key string) (string, bool, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil || !found {
		return "", false, err
	}

	strValue, ok := value.(starlark.String)
	if !ok {
		return "", false, fmt.Errorf("expected string for key %s, got %s", key, value.Type())
	}

	return strValue.GoString(), true, nil
}

// getDependencies reads a dependency list given as a list of strings or as a
// comma separated string. A missing key or None yields nil.
func getDependencies(dict *starlark.Dict, key string) ([]string, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil || !found || value == starlark.None {
		return nil, err
	}

	switch v := value.(type) {
	case starlark.String:
		return item.ParseList(v.GoString()), nil
	case *starlark.List:
		return getStringList(v, key)
	default:
		return nil, fmt.Errorf("expected list or string for key %s, got %s", key, value.Type())
	}
}

func getStringList(list *starlark.List, key string) ([]string, error) {
	result := make([]string, 0, list.Len())
	iter := list.Iterate()
	defer iter.Done()
	var x starlark.Value
	for iter.Next(&x) {
		str, ok := x.(starlark.String)
		if !ok {
			return nil, fmt.Errorf("expected string in list for key %s, got %s", key, x.Type())
		}
		result = append(result, str.GoString())
	}

	return result, nil
}
