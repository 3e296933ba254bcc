// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted undirected graphs.
//
// Options:
//
//	– Source:          ID of the starting vertex (required, must exist).
//	– WithTarget:      stop as soon as this vertex is finalized.
//	– WithMaxDistance: cap on distances to explore; vertices beyond stay unreachable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was never supplied.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative or NaN edge weight is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrNoPath          if a path is requested to an unreachable vertex.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested vertex was not reached.
	ErrNoPath = errors.New("dijkstra: vertex not reachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID.
// Target      – optional early-exit vertex; valid only when HasTarget is set.
// MaxDistance – optional cap on distances to explore. Default is +Inf.
type Options struct {
	Source      int
	HasSource   bool
	Target      int
	HasTarget   bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithTarget stops the search once target's distance is final. Distances of
// vertices finalized later are left at +Inf.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no target and no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Result holds a shortest-path tree rooted at Source.
//
// Dist[v] is +Inf for unreached vertices. Prev[v] and PrevEdge[v] name the
// tree parent and the edge used to reach v; both are absent for the source and
// for unreached vertices.
type Result struct {
	Source   int
	Dist     map[int]float64
	Prev     map[int]int
	PrevEdge map[int]int
}
