package cyclebasis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/cyclebasis"
)

func edge(id, u, v int, w float64) core.Edge {
	return core.Edge{ID: id, From: u, To: v, Weight: w}
}

func TestNewCycle_Square(t *testing.T) {
	c, err := cyclebasis.NewCycle([]core.Edge{
		edge(7, 3, 0, 1), edge(2, 1, 2, 2), edge(1, 0, 1, 1.5), edge(4, 2, 3, 0.5),
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4, 7}, c.EdgeIDs())
	assert.Equal(t, "1,2,4,7", c.Key())
	assert.Equal(t, []int{0, 1, 2, 3}, c.Vertices())
	assert.Equal(t, 5.0, c.Weight())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, c.Path())
	assert.Equal(t, "[0 1 2 3] w=5", c.String())
	assert.True(t, c.ContainsEdge(4))
	assert.False(t, c.ContainsEdge(3))
}

// Path leaves the smallest vertex along its lower-ID edge.
func TestCycle_PathDirection(t *testing.T) {
	c, err := cyclebasis.NewCycle([]core.Edge{
		edge(0, 0, 2, 1), edge(1, 1, 2, 1), edge(2, 0, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, c.Path())
}

func TestNewCycle_LoopAndDigon(t *testing.T) {
	loop, err := cyclebasis.NewCycle([]core.Edge{edge(5, 3, 3, 2)})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, loop.Path())
	assert.Equal(t, 1, loop.Len())

	digon, err := cyclebasis.NewCycle([]core.Edge{edge(0, 1, 2, 1), edge(1, 2, 1, 4)})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, digon.Path())
	assert.Equal(t, 5.0, digon.Weight())
}

func TestNewCycle_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		edges []core.Edge
	}{
		{"empty", nil},
		{"single edge", []core.Edge{edge(0, 0, 1, 1)}},
		{"path", []core.Edge{edge(0, 0, 1, 1), edge(1, 1, 2, 1)}},
		{"repeated edge", []core.Edge{edge(0, 0, 1, 1), edge(0, 0, 1, 1)}},
		{"loop in ring", []core.Edge{edge(0, 0, 1, 1), edge(1, 1, 0, 1), edge(2, 0, 0, 1)}},
		{"two triangles", []core.Edge{
			edge(0, 0, 1, 1), edge(1, 1, 2, 1), edge(2, 2, 0, 1),
			edge(3, 5, 6, 1), edge(4, 6, 7, 1), edge(5, 7, 5, 1),
		}},
		{"figure eight", []core.Edge{
			edge(0, 0, 1, 1), edge(1, 1, 2, 1), edge(2, 2, 0, 1),
			edge(3, 0, 3, 1), edge(4, 3, 4, 1), edge(5, 4, 0, 1),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cyclebasis.NewCycle(tc.edges)
			assert.ErrorIs(t, err, cyclebasis.ErrNotACycle)
		})
	}
}

func TestCycle_Equal(t *testing.T) {
	a, err := cyclebasis.NewCycle([]core.Edge{edge(0, 0, 1, 1), edge(1, 1, 2, 1), edge(2, 2, 0, 1)})
	require.NoError(t, err)
	b, err := cyclebasis.NewCycle([]core.Edge{edge(2, 2, 0, 1), edge(0, 0, 1, 1), edge(1, 1, 2, 1)})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}
