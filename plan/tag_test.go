package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ytsaurus.tech/library/go/core/xerrors"

	"github.com/branky/scoobi/exec"
	"github.com/branky/scoobi/wire"
)

func TestMapper_taggedMapperRollingKeys(t *testing.T) {
	load := NewLoad[string](wire.YSON[string]())
	m := NewMapper(load, func(s string, emit exec.Emitter[string]) { emit(s + "!") }, wire.YSON[string]())

	tm := m.TaggedMapper(4)
	require.Equal(t, []int{4}, tm.Tags)

	var got []wire.Pair[int64, string]
	collect := func(p wire.Pair[int64, string]) { got = append(got, p) }
	tm.Map("a", collect)
	tm.Map("a", collect)

	require.Len(t, got, 2)
	assert.Equal(t, "a!", got[0].Value)
	assert.Equal(t, "a!", got[1].Value)
	assert.NotEqual(t, got[0].Key, got[1].Key, "every output rides a fresh rolling key")
	assert.Greater(t, got[1].Key, got[0].Key)
}

func TestGbkMapper_taggedMapperKeysPassThrough(t *testing.T) {
	_, gm, _, _, _ := buildCountGraph()

	tm := gm.TaggedMapper(9)
	require.Equal(t, []int{9}, tm.Tags)

	var got []wire.Pair[string, int]
	tm.Map("the quick the", func(p wire.Pair[string, int]) { got = append(got, p) })

	require.Equal(t, []wire.Pair[string, int]{
		{Key: "the", Value: 1},
		{Key: "quick", Value: 1},
		{Key: "the", Value: 1},
	}, got)
}

func TestCombiner_taggedCombiner(t *testing.T) {
	_, _, _, comb, _ := buildCountGraph()

	tc := comb.TaggedCombiner(3)
	require.Equal(t, 3, tc.Tag)
	assert.Equal(t, 5, tc.Combine(2, 3))
}

func TestCombiner_taggedReducerFoldsGroup(t *testing.T) {
	_, _, _, comb, _ := buildCountGraph()

	tr := comb.TaggedReducer(2)
	require.Equal(t, 2, tr.Tag)

	var got []wire.Pair[string, int]
	err := tr.Reduce("k", []int{1, 2, 3}, func(p wire.Pair[string, int]) { got = append(got, p) })
	require.NoError(t, err)
	require.Equal(t, []wire.Pair[string, int]{{Key: "k", Value: 6}}, got)
}

func TestCombiner_taggedReducerFoldsLeftToRight(t *testing.T) {
	pairs := NewLoad[wire.Pair[string, string]](wire.YSON[wire.Pair[string, string]]())
	gbk := NewGroupByKey(pairs, wire.NaturalGrouping[string](wire.YSON[string]()))
	concat := NewCombiner(gbk, func(x, y string) string { return x + y })

	var got []wire.Pair[string, string]
	err := concat.TaggedReducer(1).Reduce("k", []string{"a", "b", "c"}, func(p wire.Pair[string, string]) {
		got = append(got, p)
	})
	require.NoError(t, err)
	require.Equal(t, []wire.Pair[string, string]{{Key: "k", Value: "abc"}}, got)
}

func TestCombiner_taggedReducerEmptyGroup(t *testing.T) {
	_, _, _, comb, _ := buildCountGraph()

	err := comb.TaggedReducer(2).Reduce("k", nil, func(p wire.Pair[string, int]) {
		t.Fatalf("no output expected for an empty group, got %v", p)
	})
	require.Error(t, err)
	require.True(t, xerrors.Is(err, exec.ErrEmptyGroup))
}

func TestCombineReducer(t *testing.T) {
	_, _, _, comb, _ := buildCountGraph()

	tr := CombineReducer(comb, 5, func(word string, total int, emit exec.Emitter[string]) {
		emit(fmt.Sprintf("%s=%d", word, total))
	})
	require.Equal(t, 5, tr.Tag)

	var got []string
	require.NoError(t, tr.Reduce("the", []int{1, 1, 1}, func(s string) { got = append(got, s) }))
	require.Equal(t, []string{"the=3"}, got)

	err := tr.Reduce("the", nil, func(s string) { t.Fatalf("unexpected output %q", s) })
	require.True(t, xerrors.Is(err, exec.ErrEmptyGroup))
}

func TestGbkReducer_taggedReducer(t *testing.T) {
	_, _, gbk, _, _ := buildCountGraph()
	gr := NewGbkReducer(gbk, func(word string, counts []int, emit exec.Emitter[string]) {
		emit(fmt.Sprintf("%s:%d", word, len(counts)))
	}, wire.YSON[string]())

	tr := gr.TaggedReducer(7)
	require.Equal(t, 7, tr.Tag)

	var got []string
	require.NoError(t, tr.Reduce("the", []int{1, 1, 1, 1}, func(s string) { got = append(got, s) }))
	require.Equal(t, []string{"the:4"}, got)
}

func TestReducer_taggedReducer(t *testing.T) {
	_, _, _, _, red := buildCountGraph()

	tr, err := red.TaggedReducer(1)
	require.NoError(t, err)
	require.Equal(t, 1, tr.Tag)

	var got []string
	require.NoError(t, tr.Reduce("the", []int{1, 1, 1}, func(s string) { got = append(got, s) }))
	require.Equal(t, []string{"the\t3"}, got)
}

func TestReducer_requiresCombinerInput(t *testing.T) {
	pairs := NewLoad[wire.Pair[string, int]](wire.YSON[wire.Pair[string, int]]())
	red := NewReducer(pairs, func(word string, count int, emit exec.Emitter[string]) {
		emit(word)
	}, wire.YSON[string]())

	_, err := red.TaggedReducer(1)
	require.Error(t, err)

	var se *StructureError
	require.True(t, xerrors.As(err, &se))
	assert.Same(t, red, se.Node)
	assert.Contains(t, err.Error(), "must be preceded by a combiner")
}

func TestTaggedIdentityMapper(t *testing.T) {
	load := NewLoad[string](wire.YSON[string]())

	tm := TaggedIdentityMapper(load, 6)
	require.Equal(t, []int{6}, tm.Tags)

	var got []wire.Pair[int64, string]
	collect := func(p wire.Pair[int64, string]) { got = append(got, p) }
	tm.Map("x", collect)
	tm.Map("x", collect)

	require.Len(t, got, 2)
	assert.Equal(t, "x", got[0].Value)
	assert.Equal(t, "x", got[1].Value)
	assert.NotEqual(t, got[0].Key, got[1].Key)
}
