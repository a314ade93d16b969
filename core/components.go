package core

import "sort"

// Components partitions the vertices into connected components with a
// breadth-first sweep. Components are ordered by their lowest vertex, and
// each lists its vertices in ascending order. Isolated vertices form
// singleton components.
//
// Time: O(n²) per call, since each dequeued vertex scans its matrix row.
// Memory: O(n).
func (g *Graph) Components() [][]int {
	n := len(g.points)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := 0; v < n; v++ {
				if g.weights[u*n+v] > 0 && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a and b lie in the same component.
// Both indices must be in range; it panics otherwise.
func (g *Graph) Connected(a, b int) bool {
	g.mustContain(a)
	g.mustContain(b)
	if a == b {
		return true
	}
	n := len(g.points)
	seen := make([]bool, n)
	queue := []int{a}
	seen[a] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for v := 0; v < n; v++ {
			if g.weights[u*n+v] <= 0 || seen[v] {
				continue
			}
			if v == b {
				return true
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return false
}
