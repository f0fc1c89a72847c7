package maze

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts cells reachable from (0,0) through open passages
func reachable(g *Grid) int {
	seen := make([]bool, g.Size())
	queue := []Point{{0, 0}}
	seen[0] = true
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Directions {
			if !g.Open(p, d) {
				continue
			}
			n := p.Add(d)
			if !seen[g.Index(n)] {
				seen[g.Index(n)] = true
				queue = append(queue, n)
			}
		}
	}
	return count
}

func TestNew_AllWalled(t *testing.T) {
	g, err := New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c, ok := g.Cell(Point{x, y})
			require.True(t, ok)
			assert.Equal(t, [4]bool{true, true, true, true}, c.Walls)
			assert.Equal(t, 0, g.OpenCount(Point{x, y}))
		}
	}
	assert.Empty(t, g.Edges())
}

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, 3},
		{"too wide", MaxDimension + 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			_, err = Generate(tt.w, tt.h, 1)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestAdjacent_Bounds(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	_, ok := g.Adjacent(Point{0, 0}, North)
	assert.False(t, ok)
	_, ok = g.Adjacent(Point{0, 0}, West)
	assert.False(t, ok)
	n, ok := g.Adjacent(Point{0, 0}, East)
	assert.True(t, ok)
	assert.Equal(t, Point{1, 0}, n)
	n, ok = g.Adjacent(Point{1, 0}, South)
	assert.True(t, ok)
	assert.Equal(t, Point{1, 1}, n)
	_, ok = g.Adjacent(Point{1, 1}, None)
	assert.False(t, ok)
}

func TestRemoveWallBetween(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.removeWallBetween(Point{1, 1}, Point{1, 0}))
	assert.True(t, g.Open(Point{1, 1}, North))
	assert.True(t, g.Open(Point{1, 0}, South))

	t.Run("diagonal rejected", func(t *testing.T) {
		err := g.removeWallBetween(Point{0, 0}, Point{1, 1})
		assert.True(t, errors.Is(err, ErrInvalidOperation))
	})
	t.Run("distance two rejected", func(t *testing.T) {
		err := g.removeWallBetween(Point{0, 0}, Point{2, 0})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
	t.Run("outside grid rejected", func(t *testing.T) {
		err := g.removeWallBetween(Point{2, 2}, Point{3, 2})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
	t.Run("same cell rejected", func(t *testing.T) {
		err := g.removeWallBetween(Point{1, 1}, Point{1, 1})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestGenerate_SpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 7}, {10, 10}, {25, 13}, {MaxDimension, MaxDimension}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := Generate(sz[0], sz[1], seed)
			require.NoError(t, err)

			cells := sz[0] * sz[1]
			assert.Len(t, g.Edges(), cells-1, "size %v seed %d", sz, seed)
			assert.Equal(t, cells, reachable(g), "size %v seed %d", sz, seed)
		}
	}
}

func TestGenerate_WallSymmetry(t *testing.T) {
	g, err := Generate(12, 9, 42)
	require.NoError(t, err)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Point{x, y}
			for _, d := range Directions {
				n, ok := g.Adjacent(p, d)
				if !ok {
					assert.True(t, g.Wall(p, d), "boundary wall open at %v %v", p, d)
					continue
				}
				assert.Equal(t, g.Open(p, d), g.Open(n, d.Opposite()), "asymmetric wall %v %v", p, d)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(15, 11, 7)
	require.NoError(t, err)
	b, err := Generate(15, 11, 7)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, int64(7), a.Seed())
}

func TestGenerate_ZeroSeedPicksOne(t *testing.T) {
	g, err := Generate(4, 4, 0)
	require.NoError(t, err)
	assert.NotZero(t, g.Seed())
}

// A 2x2 backtracker from (0,0) can only produce two mazes: east-first
// (0,0)-(1,0)-(1,1)-(0,1) or south-first (0,0)-(0,1)-(1,1)-(1,0).
func TestGenerate_TwoByTwoShapes(t *testing.T) {
	eastFirst, southFirst := 0, 0
	for seed := int64(1); seed <= 64; seed++ {
		g, err := Generate(2, 2, seed)
		require.NoError(t, err)

		switch {
		case g.Open(Point{0, 0}, East):
			eastFirst++
			assert.True(t, g.Open(Point{1, 0}, South))
			assert.True(t, g.Open(Point{1, 1}, West))
			assert.True(t, g.Wall(Point{0, 0}, South))
		default:
			southFirst++
			assert.True(t, g.Open(Point{0, 0}, South))
			assert.True(t, g.Open(Point{0, 1}, East))
			assert.True(t, g.Open(Point{1, 1}, North))
			assert.True(t, g.Wall(Point{0, 0}, East))
		}
	}
	assert.Positive(t, eastFirst)
	assert.Positive(t, southFirst)
}

func TestFromPassages(t *testing.T) {
	g, err := FromPassages(2, 2, [][2]Point{
		{{0, 0}, {1, 0}},
		{{1, 0}, {1, 1}},
	})
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 2)
	assert.Equal(t, int64(0), g.Seed())

	_, err = FromPassages(2, 2, [][2]Point{{{0, 0}, {1, 1}}})
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = FromPassages(2, 2, [][2]Point{{{1, 1}, {2, 1}}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRender(t *testing.T) {
	g, err := FromPassages(2, 2, [][2]Point{
		{{0, 0}, {1, 0}},
		{{1, 0}, {1, 1}},
		{{1, 1}, {0, 1}},
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"#####",
		"#   #",
		"### #",
		"#   #",
		"#####",
		"",
	}, "\n")
	assert.Equal(t, want, g.String())

	path := []Point{{1, 1}, {1, 0}, {0, 0}}
	want = strings.Join([]string{
		"#####",
		"#S..#",
		"###.#",
		"#  G#",
		"#####",
		"",
	}, "\n")
	assert.Equal(t, want, g.Render(path, Point{0, 0}, Point{1, 1}))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, None, None.Opposite())

	a, b := North.Perpendicular()
	assert.ElementsMatch(t, []Direction{East, West}, []Direction{a, b})
	a, b = East.Perpendicular()
	assert.ElementsMatch(t, []Direction{North, South}, []Direction{a, b})

	d, ok := DirectionBetween(Point{2, 2}, Point{2, 1})
	assert.True(t, ok)
	assert.Equal(t, North, d)
	_, ok = DirectionBetween(Point{2, 2}, Point{3, 3})
	assert.False(t, ok)

	d, ok = ParseDirection("west")
	assert.True(t, ok)
	assert.Equal(t, West, d)
	_, ok = ParseDirection("up")
	assert.False(t, ok)
	assert.Equal(t, "none", None.String())
}
