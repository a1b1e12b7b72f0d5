package queue

import (
	"math/rand"
	"sort"
	"testing"
)

func TestSort(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "reversed",
			input: []string{"d", "c", "b", "a"},
			want:  []string{"a", "b", "c", "d"},
		},
		{
			name:  "shuffled",
			input: []string{"pear", "apple", "orange", "banana", "apple"},
			want:  []string{"apple", "apple", "banana", "orange", "pear"},
		},
		{
			name:  "already-sorted",
			input: []string{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "all-equal",
			input: []string{"x", "x", "x"},
			want:  []string{"x", "x", "x"},
		},
		{
			// Byte-wise ordering, not numeric: "10" sorts before "9".
			name:  "bytewise",
			input: []string{"9", "10", "1"},
			want:  []string{"1", "10", "9"},
		},
		{
			name:  "single",
			input: []string{"only"},
			want:  []string{"only"},
		},
		{
			name:  "empty",
			input: []string{},
			want:  []string{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q := fill(t, tc.input...)
			q.Sort()
			checkRing(t, q, tc.want...)
		})
	}

	t.Run("nil", func(t *testing.T) {
		var q *Queue
		q.Sort()
	})
}

func TestSortRandomMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(64)
		input := make([]string, n)
		for i := range input {
			input[i] = string(rune('a' + rng.Intn(8)))
		}

		q := fill(t, input...)
		q.Sort()

		want := append([]string(nil), input...)
		sort.Strings(want)
		checkRing(t, q, want...)
	}
}

func TestSortIdempotent(t *testing.T) {
	q := fill(t, "b", "a", "c", "a")
	q.Sort()
	first := q.Values()
	q.Sort()
	second := q.Values()
	if len(first) != len(second) {
		t.Fatalf("wanted %v; found %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("wanted %v; found %v", first, second)
		}
	}
}

func TestSortStability(t *testing.T) {
	q := fill(t, "m", "z", "m", "a")

	// Capture element identity for the two equal payloads: x was
	// inserted before y.
	var x, y *Element
	for e := q.Front(); e != nil; e = q.Next(e) {
		if e.Value() == "m" {
			if x == nil {
				x = e
			} else {
				y = e
			}
		}
	}
	if x == nil || y == nil {
		t.Fatal("test setup: equal-payload elements not found")
	}

	q.Sort()
	checkRing(t, q, "a", "m", "m", "z")

	// After sorting, x must still precede y.
	for e := q.Front(); e != nil; e = q.Next(e) {
		if e == x {
			break
		}
		if e == y {
			t.Fatal("equal-payload elements reordered: y precedes x")
		}
	}
}

func TestSortNoAllocation(t *testing.T) {
	alloc := &limitAllocator{remaining: 4}
	q := NewWithAllocator(alloc)
	for _, v := range []string{"d", "b", "c", "a"} {
		q.InsertTail(v)
	}
	// Allocator exhausted: the sort must succeed through link rewiring
	// alone.
	q.Sort()
	checkRing(t, q, "a", "b", "c", "d")
	if alloc.released != 0 {
		t.Fatalf("sort released %d elements", alloc.released)
	}
}
