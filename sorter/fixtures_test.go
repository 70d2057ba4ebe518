package sorter

import "github.com/ZacxDev/itemsort/item"

// fixture is one of the classic sorting scenarios. want is the expected
// payload order for successful sorts; wantErr the sentinel for failing ones.
type fixture struct {
	name    string
	items   []item.Item[string]
	want    []string
	wantErr error
}

func named(name, list string) item.Item[string] {
	payload := name
	if list != "" {
		payload = name + " dependsOn " + list
	}
	return item.FromList(name, payload, list)
}

func anonymous(payload, list string) item.Item[string] {
	return item.FromList("", payload, list)
}

func fixtures() []fixture {
	return []fixture{
		{
			name: "all four categories of items",
			items: []item.Item[string]{
				named("s100", "s50,s60"),
				named("s90", "s50,s80"),
				named("s80", "s50"),
				named("s70", ""),
				named("s60", ""),
				named("s50", ""),
				anonymous("unnamed1", ""),
				anonymous("unnamed2", ""),
				anonymous("unnamed3 dependsOn s70", "s70"),
				anonymous("unnamed4 dependsOn s80", "s80"),
			},
			want: []string{
				"s70", "s60", "s50", "unnamed1", "unnamed2",
				"unnamed3 dependsOn s70", "s80 dependsOn s50",
				"s100 dependsOn s50,s60", "unnamed4 dependsOn s80",
				"s90 dependsOn s50,s80",
			},
		},
		{
			name: "cyclic references",
			items: []item.Item[string]{
				named("s100", "s50,s60"),
				named("s90", "s80"),
				named("s80", "s50"),
				named("s70", ""),
				named("s60", ""),
				named("s50", "s90"),
			},
			wantErr: ErrCyclicDependency,
		},
		{
			name: "duplicate items without dependencies",
			items: []item.Item[string]{
				named("s100", "s50,s60"),
				named("s90", "s80"),
				named("s80", "s50"),
				named("s60", ""),
				named("s60", ""),
				named("s50", ""),
			},
			want: []string{
				"s60", "s60", "s50", "s80 dependsOn s50",
				"s100 dependsOn s50,s60", "s90 dependsOn s80",
			},
		},
		{
			name: "duplicate items with dependencies in the same order",
			items: []item.Item[string]{
				named("s100", "s50,s60"),
				named("s90", "s80"),
				named("s80", "s60"),
				named("s60", "s50"),
				named("s60", "s50"),
				named("s50", ""),
			},
			want: []string{
				"s50", "s60 dependsOn s50", "s60 dependsOn s50",
				"s80 dependsOn s60", "s100 dependsOn s50,s60", "s90 dependsOn s80",
			},
		},
		{
			name: "duplicate names with different dependencies",
			items: []item.Item[string]{
				named("s100", "s50,s60"),
				named("s90", "s80"),
				named("s80", "s50"),
				named("s60", "s50"),
				named("s60", "s40"),
				named("s50", ""),
				named("s40", ""),
			},
			wantErr: ErrConflictingDuplicate,
		},
		{
			name: "no item has dependencies",
			items: []item.Item[string]{
				named("s60", ""),
				named("s50", ""),
				named("s40", ""),
				anonymous("unnamed1", ""),
				named("s10", ""),
				anonymous("unnamed2", ""),
				named("s20", ""),
				named("s30", ""),
			},
			want: []string{"s60", "s50", "s40", "unnamed1", "s10", "unnamed2", "s20", "s30"},
		},
		{
			name: "maximum number of dependencies",
			items: []item.Item[string]{
				named("s100", "s50,s60,s70,s80,s90"),
				named("s90", "s50,s60,s70,s80"),
				named("s80", "s50,s60,s70"),
				named("s70", "s50,s60"),
				named("s60", "s50"),
				named("s50", ""),
			},
			want: []string{
				"s50", "s60 dependsOn s50", "s70 dependsOn s50,s60",
				"s80 dependsOn s50,s60,s70", "s90 dependsOn s50,s60,s70,s80",
				"s100 dependsOn s50,s60,s70,s80,s90",
			},
		},
		{
			name: "dependency on a non-existent item",
			items: []item.Item[string]{
				named("s100", "s50,s60"),
				named("s90", "s80"),
				named("s80", "s50"),
				named("s60", "s40"),
				named("s50", ""),
			},
			wantErr: ErrUnknownDependency,
		},
		{
			name: "same dependency listed twice",
			items: []item.Item[string]{
				named("s100", "s50,s90"),
				named("s90", "s80"),
				named("s80", "s50,s50,s50"),
				named("s50", ""),
			},
			want: []string{"s50", "s80 dependsOn s50,s50,s50", "s90 dependsOn s80", "s100 dependsOn s50,s90"},
		},
		{
			name:  "empty set of items",
			items: []item.Item[string]{},
			want:  []string{},
		},
		{
			name: "duplicate items with dependencies in a different order",
			items: []item.Item[string]{
				named("s100", "s50,s60"),
				named("s90", "s80"),
				named("s80", "s50"),
				named("s60", "s50,s40,s40"),
				named("s60", "s40,s50"),
				named("s50", ""),
				named("s40", ""),
			},
			want: []string{
				"s50", "s40", "s80 dependsOn s50", "s60 dependsOn s40,s50",
				"s60 dependsOn s50,s40,s40", "s90 dependsOn s80", "s100 dependsOn s50,s60",
			},
		},
	}
}

func payloads(items []item.Item[string]) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Payload())
	}
	return out
}
