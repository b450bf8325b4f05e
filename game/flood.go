package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/voxsweep/util/collections"
)

// Visitor handles a dequeued coordinate and reports whether the flood should
// continue through its neighbors.
type Visitor func(Coord) bool
type NeighborGetter func(Coord) []Coord

// flood walks outward from start in breadth-first order. Each coordinate is
// handed to visit at most once, however many paths lead to it.
func flood(start Coord, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(collections.Set[Coord])
	var visitQueue deque.Deque

	enqueue := func(c Coord) {
		// Don't visit, if already visited
		if visited.Contains(c) {
			return
		}
		visited.Add(c)
		visitQueue.PushBack(c)
	}

	enqueue(start)
	for visitQueue.Len() > 0 {
		c := visitQueue.PopFront().(Coord)
		if !visit(c) {
			continue
		}
		for _, neighbor := range getNeighbors(c) {
			enqueue(neighbor)
		}
	}
}
