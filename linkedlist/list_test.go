// SPDX-License-Identifier: MIT

package linkedlist_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoshelf/linkedlist"
)

func TestList_AppendSearchLen(t *testing.T) {
	var l linkedlist.List[int]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Values())

	for _, v := range []int{10, 20, 30, 20} {
		l.Append(v)
	}
	assert.False(t, l.IsEmpty())
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{10, 20, 30, 20}, l.Values())
	assert.Equal(t, 1, l.Search(20), "first match")
	assert.Equal(t, linkedlist.NotFound, l.Search(99))
}

func TestList_Delete(t *testing.T) {
	cases := []struct {
		name   string
		in     []int
		del    int
		ok     bool
		remain []int
	}{
		{"head", []int{1, 2, 3}, 1, true, []int{2, 3}},
		{"middle", []int{1, 2, 3}, 2, true, []int{1, 3}},
		{"tail", []int{1, 2, 3}, 3, true, []int{1, 2}},
		{"only", []int{1}, 1, true, []int{}},
		{"first of dups", []int{1, 2, 1}, 1, true, []int{2, 1}},
		{"missing", []int{1, 2}, 9, false, []int{1, 2}},
		{"empty", nil, 1, false, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := linkedlist.New(tc.in...)
			assert.Equal(t, tc.ok, l.Delete(tc.del))
			assert.Equal(t, tc.remain, l.Values())
			assert.Equal(t, len(tc.remain), l.Len())

			// The tail must still be correct: appending lands at the end.
			l.Append(42)
			assert.Equal(t, append(slices.Clone(tc.remain), 42), l.Values())
		})
	}
}

func TestList_AllStopsEarly(t *testing.T) {
	l := linkedlist.New("a", "b", "c")
	var got []string
	for v := range l.All() {
		got = append(got, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDoubly_Delete(t *testing.T) {
	cases := []struct {
		name   string
		in     []string
		del    string
		ok     bool
		remain []string
	}{
		{"head", []string{"a", "b", "c"}, "a", true, []string{"b", "c"}},
		{"middle", []string{"a", "b", "c"}, "b", true, []string{"a", "c"}},
		{"tail", []string{"a", "b", "c"}, "c", true, []string{"a", "b"}},
		{"only", []string{"a"}, "a", true, []string{}},
		{"missing", []string{"a"}, "z", false, []string{"a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := linkedlist.NewDoubly(tc.in...)
			assert.Equal(t, tc.ok, l.Delete(tc.del))
			assert.Equal(t, tc.remain, l.Values())

			rev := slices.Clone(tc.remain)
			slices.Reverse(rev)
			assert.Equal(t, rev, l.Reverse(), "prev links must mirror next links")
			assert.Equal(t, len(tc.remain), l.Len())
			assert.Equal(t, len(tc.remain) == 0, l.IsEmpty())
		})
	}
}

func TestDoubly_SearchAndNeighbors(t *testing.T) {
	l := linkedlist.NewDoubly(5, 6, 7)
	assert.Equal(t, 2, l.Search(7))
	assert.Equal(t, linkedlist.NotFound, l.Search(8))

	prev, next, hasPrev, hasNext, ok := l.Neighbors(6)
	require.True(t, ok)
	assert.True(t, hasPrev)
	assert.True(t, hasNext)
	assert.Equal(t, 5, prev)
	assert.Equal(t, 7, next)

	_, _, hasPrev, hasNext, ok = l.Neighbors(5)
	require.True(t, ok)
	assert.False(t, hasPrev)
	assert.True(t, hasNext)

	_, _, _, _, ok = l.Neighbors(9)
	assert.False(t, ok)
}
