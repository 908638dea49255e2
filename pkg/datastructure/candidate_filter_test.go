package datastructure

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func collect(cf CandidateFilter) []Index {
	got := []Index{}
	for it := cf.Begin(); it.Next(); {
		got = append(got, it.Node())
	}
	return got
}

func TestCandidateFilter(t *testing.T) {
	g := NewLineNetwork(100, 50)

	testCases := []struct {
		name   string
		center Index
		hop    uint64
		want   []Index
	}{
		{
			name:   "interior window",
			center: 10,
			hop:    2,
			want:   []Index{8, 9, 11, 12},
		},
		{
			name:   "origin never yields zero",
			center: 0,
			hop:    3,
			want:   []Index{1, 2, 3},
		},
		{
			name:   "window clipped at vertex one",
			center: 2,
			hop:    5,
			want:   []Index{1, 3, 4, 5, 6, 7},
		},
		{
			name:   "window clipped at the last vertex",
			center: 98,
			hop:    3,
			want:   []Index{95, 96, 97, 99},
		},
		{
			name:   "zero hop distance",
			center: 50,
			hop:    0,
			want:   []Index{},
		},
		{
			name:   "sentinel center",
			center: 100,
			hop:    5,
			want:   []Index{},
		},
		{
			name:   "center past the sentinel",
			center: 1000,
			hop:    5,
			want:   []Index{},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cf := NewCandidateFilter(g, tt.center, tt.hop)
			assert.Equal(t, tt.want, collect(cf))
		})
	}
}

func TestCandidateFilterHugeHop(t *testing.T) {
	g := NewLineNetwork(6, 50)

	cf := NewCandidateFilter(g, 3, ^uint64(0))
	assert.Equal(t, []Index{1, 2, 4, 5}, collect(cf))
}

func TestCandidateFilterRestartable(t *testing.T) {
	g := NewLineNetwork(100, 50)
	cf := NewCandidateFilter(g, 31, 5)

	first := slices.Collect(cf.All())
	second := slices.Collect(cf.All())
	assert.Equal(t, first, second)
	assert.Len(t, first, 10)

	// an early break must not disturb a later traversal
	for v := range cf.All() {
		assert.Equal(t, Index(26), v)
		break
	}
	assert.Equal(t, first, collect(cf))
}

func TestCandidateFilterExhausted(t *testing.T) {
	g := NewLineNetwork(100, 50)
	it := NewCandidateFilter(g, 10, 1).Begin()

	assert.True(t, it.Next())
	assert.Equal(t, Index(9), it.Node())
	assert.True(t, it.Next())
	assert.Equal(t, Index(11), it.Node())
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestCandidateFilterProperties(t *testing.T) {
	const maxNodes = 40
	g := NewLineNetwork(maxNodes, 50)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("yields exactly the legal successors in ascending order", prop.ForAll(
		func(center uint32, hop uint64) bool {
			want := []Index{}
			if center < maxNodes {
				for n := Index(1); n < maxNodes; n++ {
					if n != Index(center) && g.Distance(Index(center), n) <= hop {
						want = append(want, n)
					}
				}
			}
			return slices.Equal(want, collect(NewCandidateFilter(g, Index(center), hop)))
		},
		gen.UInt32Range(0, maxNodes+5),
		gen.UInt64Range(0, maxNodes+5),
	))

	properties.TestingRun(t)
}
