package sitegen

// Table is the ordered page table. Paths are unique: building or merging a
// table with a repeated path keeps the entry at the position where the path
// first appeared and takes the config of the last occurrence, the same way
// merging two dictionaries or maps keyed by path would.
type Table []Page

// NewTable builds a Table from pages, collapsing duplicate paths.
func NewTable(pages ...Page) Table {
	t := make(Table, 0, len(pages))
	index := make(map[string]int, len(pages))
	for _, p := range pages {
		if i, ok := index[p.Path]; ok {
			t[i].Config = p.Config
			continue
		}
		index[p.Path] = len(t)
		t = append(t, p)
	}
	return t
}

// Union returns t followed by others, collapsing duplicate paths. None of the
// inputs are modified.
func (t Table) Union(others ...Table) Table {
	n := len(t)
	for _, o := range others {
		n += len(o)
	}
	all := make([]Page, 0, n)
	all = append(all, t...)
	for _, o := range others {
		all = append(all, o...)
	}
	return NewTable(all...)
}

// Lookup returns the config stored under path.
func (t Table) Lookup(path string) (PageConfig, bool) {
	for _, p := range t {
		if p.Path == path {
			return p.Config, true
		}
	}
	return PageConfig{}, false
}

// Paths returns the table's paths in order.
func (t Table) Paths() []string {
	paths := make([]string, len(t))
	for i, p := range t {
		paths[i] = p.Path
	}
	return paths
}
