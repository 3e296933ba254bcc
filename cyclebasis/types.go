package cyclebasis

import (
	"errors"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/marois/cdk/core"
)

// Sentinel errors for cycle basis computation.
var (
	// ErrNilGraph indicates that a nil graph was passed to New.
	ErrNilGraph = errors.New("cyclebasis: graph is nil")

	// ErrUnknownVertex indicates an edge endpoint missing from Vertices().
	ErrUnknownVertex = errors.New("cyclebasis: edge endpoint is not a vertex")

	// ErrNotACycle indicates that an edge set is not one simple cycle.
	ErrNotACycle = errors.New("cyclebasis: edges do not form a simple cycle")

	// ErrRankMismatch indicates that the computed basis does not match the
	// circuit rank of the input. It signals an internal inconsistency.
	ErrRankMismatch = errors.New("cyclebasis: basis size differs from circuit rank")

	// ErrBadParallelism indicates WithParallelism was given n < 1.
	ErrBadParallelism = errors.New("cyclebasis: parallelism must be at least 1")
)

// Graph is the read-only view the engine consumes: a vertex list and an edge
// list with stable IDs. Endpoints of every edge must appear in Vertices.
// *core.Graph satisfies it.
type Graph interface {
	Vertices() []int
	Edges() []core.Edge
}

// Option configures a CycleBasis.
type Option func(*Options)

// Options holds the settings applied by New.
type Options struct {
	// Parallelism bounds how many biconnected components are solved at once.
	Parallelism int

	// Logger receives debug-level progress records.
	Logger *log.Logger
}

// DefaultOptions returns one worker per available CPU and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Parallelism: runtime.GOMAXPROCS(0),
		Logger:      log.New(io.Discard),
	}
}

// WithParallelism sets the number of components solved concurrently.
// n < 1 panics with ErrBadParallelism.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadParallelism.Error())
		}
		o.Parallelism = n
	}
}

// WithLogger routes progress records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
