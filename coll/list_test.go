package coll

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewList_CopiesSource(t *testing.T) {
	src := []int{1, 2, 3}
	l := NewList(src)

	src[0] = 99
	require.Equal(t, 1, l.At(0))
	require.Equal(t, 3, l.Len())
}

func TestNewList_NilRoundTripsToNil(t *testing.T) {
	l := NewList[int](nil)
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Slice())

	empty := NewList([]int{})
	require.NotNil(t, empty.Slice())
	require.Len(t, empty.Slice(), 0)
}

func TestList_ZeroValueIsEmpty(t *testing.T) {
	var l List[string]
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Slice())
}

func TestSlice_CopiesOut(t *testing.T) {
	l := ListOf("a", "b")
	s := l.Slice()
	s[0] = "mutated"
	require.Equal(t, "a", l.At(0))
}

func TestList_All(t *testing.T) {
	l := ListOf(10, 20, 30)
	got := map[int]int{}
	for i, e := range l.All() {
		got[i] = e
	}
	require.Equal(t, map[int]int{0: 10, 1: 20, 2: 30}, got)
}

func TestNewListFunc(t *testing.T) {
	l := NewListFunc([]int{1, 2}, strconv.Itoa)
	require.Equal(t, "1", l.At(0))
	require.Equal(t, "2", l.At(1))
	require.Equal(t, List[string]{}, NewListFunc[int, string](nil, strconv.Itoa))
}

func TestListFunc_And_SliceFunc(t *testing.T) {
	l := ListOf(1, 2, 3)

	doubled := ListFunc(l, func(e int) int { return e * 2 })
	require.Equal(t, []int{2, 4, 6}, doubled.Slice())

	strs := SliceFunc(l, strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, strs)

	var zero List[int]
	require.Nil(t, SliceFunc(zero, strconv.Itoa))
}

func TestMapSlice(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
	require.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
}
