package toposort

import (
	"maps"
	"slices"
)

// Levels maps node IDs to their BFS batch index. Unlike a plain map it keeps
// a fixed iteration order (the in-degree table order of the sort that
// produced it), so grouping and printing are reproducible.
//
// A nil *Levels behaves like an empty one.
type Levels struct {
	nodes []string
	level map[string]int
}

// NewLevels builds Levels from an iteration order and a level assignment.
// Nodes in order that have no assignment are skipped; assignments for nodes
// not in order are ignored.
func NewLevels(order []string, assigned map[string]int) *Levels {
	l := &Levels{
		nodes: make([]string, 0, len(order)),
		level: make(map[string]int, len(order)),
	}
	for _, id := range order {
		lv, ok := assigned[id]
		if !ok {
			continue
		}
		if _, dup := l.level[id]; dup {
			continue
		}
		l.nodes = append(l.nodes, id)
		l.level[id] = lv
	}
	return l
}

// Get returns the level of id and whether it was assigned one.
func (l *Levels) Get(id string) (int, bool) {
	if l == nil {
		return 0, false
	}
	lv, ok := l.level[id]
	return lv, ok
}

// Len returns the number of nodes with a level.
func (l *Levels) Len() int {
	if l == nil {
		return 0
	}
	return len(l.nodes)
}

// Nodes returns the node IDs in iteration order.
func (l *Levels) Nodes() []string {
	if l == nil {
		return nil
	}
	return slices.Clone(l.nodes)
}

// Max returns the highest assigned level, or -1 when there are none.
func (l *Levels) Max() int {
	m := -1
	if l == nil {
		return m
	}
	for _, lv := range l.level {
		m = max(m, lv)
	}
	return m
}

// Each calls fn for every node in iteration order.
func (l *Levels) Each(fn func(id string, level int)) {
	if l == nil {
		return
	}
	for _, id := range l.nodes {
		fn(id, l.level[id])
	}
}

// Map returns a copy of the assignment as a plain map.
func (l *Levels) Map() map[string]int {
	if l == nil {
		return map[string]int{}
	}
	return maps.Clone(l.level)
}

// LevelGroup is one bucket of [AnalyzeLevels].
type LevelGroup struct {
	Level int      `json:"level"`
	Nodes []string `json:"nodes"`
}

// AnalyzeLevels groups nodes by level. Buckets are sorted by level ascending
// and each bucket keeps the iteration order of l. Empty levels produce no
// bucket.
func AnalyzeLevels(l *Levels) []LevelGroup {
	byLevel := make(map[int][]string)
	l.Each(func(id string, lv int) {
		byLevel[lv] = append(byLevel[lv], id)
	})

	groups := make([]LevelGroup, 0, len(byLevel))
	for _, lv := range slices.Sorted(maps.Keys(byLevel)) {
		groups = append(groups, LevelGroup{Level: lv, Nodes: byLevel[lv]})
	}
	return groups
}

// InvertLevels returns a copy of l with every level replaced by Max()-level.
//
// BFS puts the citing papers at level 0 and the most-cited foundations at the
// top. Inverting turns that into "number of dependency layers below", so
// foundational papers become level 0.
func InvertLevels(l *Levels) *Levels {
	top := l.Max()
	inverted := make(map[string]int, l.Len())
	l.Each(func(id string, lv int) {
		inverted[id] = top - lv
	})
	return NewLevels(l.Nodes(), inverted)
}
