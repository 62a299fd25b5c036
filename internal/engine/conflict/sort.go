package conflict

import (
	"sort"

	"github.com/loadstone/loadstone/internal/core/domain"
)

// OrderResult distinguishes a total order from a partial one: Cyclic lists
// the nodes that never reached zero in-degree. Callers decide whether to
// append them (the analyzer does, in input order) or treat the cycle as an
// error.
type OrderResult struct {
	Order  []string
	Cyclic []string
}

// orderNode is one enabled, resolved entry in the precedence graph.
type orderNode struct {
	display  string
	position int
	inDegree int
	succ     []string
}

// suggestOrder topologically sorts the enabled, resolved entries by their
// declared precedence rules using Kahn's algorithm. An edge X -> Y means
// "X must load before Y"; both load-after and load-before declarations are
// normalized to that single direction. Nodes whose in-degree never reaches
// zero are returned in Cyclic, in original input order.
//
// Tie-break: when several nodes are simultaneously ready, the one with the
// smallest original input position is emitted first, so unconstrained input
// order is preserved and the result is deterministic.
func suggestOrder(db *domain.Database, entries []domain.LoadOrderEntry) OrderResult {
	nodes := make(map[string]*orderNode)
	inputOrder := make([]string, 0, len(entries))

	for _, e := range entries {
		if !e.Enabled {
			continue
		}
		key, rec, ok := db.Resolve(e.Name)
		if !ok || rec == nil {
			continue
		}
		if _, dup := nodes[key]; dup {
			continue
		}
		nodes[key] = &orderNode{display: e.Name, position: e.Position}
		inputOrder = append(inputOrder, key)
	}

	addEdge := func(before, after string) {
		from, okF := nodes[before]
		to, okT := nodes[after]
		if !okF || !okT || before == after {
			return
		}
		from.succ = append(from.succ, after)
		to.inDegree++
	}

	for key := range nodes {
		rec, _ := db.Get(key)
		if rec == nil {
			continue
		}
		for _, dep := range rec.LoadAfter {
			if depKey, _, ok := db.Resolve(dep); ok {
				addEdge(depKey, key)
			}
		}
		for _, dep := range rec.LoadBefore {
			if depKey, _, ok := db.Resolve(dep); ok {
				addEdge(key, depKey)
			}
		}
	}

	// Kahn's algorithm. The ready frontier is re-sorted by input position on
	// every pop; load orders are small enough that the quadratic worst case
	// does not matter.
	ready := make([]string, 0, len(nodes))
	for _, key := range inputOrder {
		if nodes[key].inDegree == 0 {
			ready = append(ready, key)
		}
	}

	result := OrderResult{Order: make([]string, 0, len(nodes))}
	emitted := make(map[string]bool, len(nodes))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool {
			return nodes[ready[i]].position < nodes[ready[j]].position
		})
		key := ready[0]
		ready = ready[1:]

		result.Order = append(result.Order, nodes[key].display)
		emitted[key] = true
		for _, next := range nodes[key].succ {
			nodes[next].inDegree--
			if nodes[next].inDegree == 0 {
				ready = append(ready, next)
			}
		}
	}

	for _, key := range inputOrder {
		if !emitted[key] {
			result.Cyclic = append(result.Cyclic, nodes[key].display)
		}
	}
	return result
}
