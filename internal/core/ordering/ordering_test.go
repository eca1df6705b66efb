package ordering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catPtr(s string) *string {
	return &s
}

// assertPartition checks that every expected id appears in exactly one list.
func assertPartition(t *testing.T, l *Lists, want []string) {
	t.Helper()

	unassigned, byCategory := l.Snapshot()
	seen := make(map[string]int)
	for _, id := range unassigned {
		seen[id]++
	}
	for _, seq := range byCategory {
		for _, id := range seq {
			seen[id]++
		}
	}

	require.Len(t, seen, len(want))
	for _, id := range want {
		assert.Equal(t, 1, seen[id], "id %s must appear exactly once", id)
	}
}

func TestLists_MoveWithin(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		to       int
		expected []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"adjacent swap", 1, 2, []string{"a", "c", "b", "d"}},
		{"same index is a no-op", 2, 2, []string{"a", "b", "c", "d"}},
		{"from out of range is a no-op", 9, 1, []string{"a", "b", "c", "d"}},
		{"to out of range is a no-op", 1, 9, []string{"a", "b", "c", "d"}},
		{"negative index is a no-op", -1, 2, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLists()
			l.Load([]string{"a", "b", "c", "d"}, nil)

			l.MoveWithin(nil, tt.from, tt.to)
			assert.Equal(t, tt.expected, l.List(nil))
		})
	}
}

func TestLists_MoveWithin_CategoryList(t *testing.T) {
	l := NewLists()
	l.Load(nil, map[string][]string{"cat-1": {"x", "y", "z"}})

	changed := l.MoveWithin(catPtr("cat-1"), 2, 0)
	assert.True(t, changed)
	assert.Equal(t, []string{"z", "x", "y"}, l.List(catPtr("cat-1")))
}

func TestLists_Transfer(t *testing.T) {
	t.Run("appends at destination end", func(t *testing.T) {
		l := NewLists()
		l.Load([]string{"a", "b"}, map[string][]string{"cat-1": {"c"}})

		l.Transfer("a", catPtr("cat-1"))

		assert.Equal(t, []string{"b"}, l.List(nil))
		assert.Equal(t, []string{"c", "a"}, l.List(catPtr("cat-1")))
		assertPartition(t, l, []string{"a", "b", "c"})
	})

	t.Run("to unassigned", func(t *testing.T) {
		l := NewLists()
		l.Load([]string{"a"}, map[string][]string{"cat-1": {"b", "c"}})

		l.Transfer("b", nil)

		assert.Equal(t, []string{"a", "b"}, l.List(nil))
		assert.Equal(t, []string{"c"}, l.List(catPtr("cat-1")))
	})

	t.Run("untracked id is reinserted", func(t *testing.T) {
		l := NewLists()
		l.Load([]string{"a"}, nil)

		l.Transfer("ghost", nil)

		assert.Equal(t, []string{"a", "ghost"}, l.List(nil))
	})
}

func TestLists_Append(t *testing.T) {
	l := NewLists()
	l.EnsureCategory("cat-1")

	l.Append(nil, "a")
	l.Append(catPtr("cat-1"), "b")

	// Appending a tracked id must not create a duplicate.
	l.Append(catPtr("cat-1"), "a")

	assert.Equal(t, []string{"a"}, l.List(nil))
	assert.Equal(t, []string{"b"}, l.List(catPtr("cat-1")))
	assertPartition(t, l, []string{"a", "b"})
}

func TestLists_DropCategory(t *testing.T) {
	l := NewLists()
	l.Load([]string{"u1"}, map[string][]string{
		"cat-1": {"a", "b", "c"},
		"cat-2": {"d"},
	})

	moved := l.DropCategory("cat-1")

	assert.Equal(t, []string{"a", "b", "c"}, moved)
	// Members keep their relative order at the end of unassigned.
	assert.Equal(t, []string{"u1", "a", "b", "c"}, l.List(nil))
	assert.Empty(t, l.List(catPtr("cat-1")))
	assert.Equal(t, []string{"d"}, l.List(catPtr("cat-2")))
	assertPartition(t, l, []string{"u1", "a", "b", "c", "d"})
}

func TestLists_Find(t *testing.T) {
	l := NewLists()
	l.Load([]string{"a"}, map[string][]string{"cat-1": {"b"}})

	cat, idx, ok := l.Find("a")
	require.True(t, ok)
	assert.Nil(t, cat)
	assert.Equal(t, 0, idx)

	cat, idx, ok = l.Find("b")
	require.True(t, ok)
	require.NotNil(t, cat)
	assert.Equal(t, "cat-1", *cat)
	assert.Equal(t, 0, idx)

	_, _, ok = l.Find("ghost")
	assert.False(t, ok)
}

// The partition invariant holds across arbitrary interleavings of appends,
// moves, transfers, removals and category drops.
func TestLists_PartitionInvariant(t *testing.T) {
	l := NewLists()
	l.EnsureCategory("cat-1")
	l.EnsureCategory("cat-2")

	var live []string
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("i-%d", i)
		switch i % 3 {
		case 0:
			l.Append(nil, id)
		case 1:
			l.Append(catPtr("cat-1"), id)
		default:
			l.Append(catPtr("cat-2"), id)
		}
		live = append(live, id)
	}
	assertPartition(t, l, live)

	l.Transfer("i-0", catPtr("cat-2"))
	l.Transfer("i-1", nil)
	l.MoveWithin(nil, 0, 2)
	l.MoveWithin(catPtr("cat-2"), 1, 0)
	assertPartition(t, l, live)

	require.True(t, l.Remove("i-5"))
	live = remove(live, "i-5")
	assertPartition(t, l, live)

	l.DropCategory("cat-1")
	assertPartition(t, l, live)

	assert.Equal(t, len(live), l.Count())
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
