package engine

import (
	"slices"
	"sort"

	"github.com/lixenwraith/boxpusher/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// The query optimizes by starting with the smallest store and filtering through larger ones.
// Results are returned in ascending entity order so iteration is deterministic.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
//
// Example:
//
//	entities := world.Query().
//	    With(world.Components.Position).
//	    With(world.Components.Movable).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns all entities present in every store.
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes Has() checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores) && len(candidates) > 0; i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	slices.Sort(candidates)
	qb.results = candidates
	return qb.results
}
