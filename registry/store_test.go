package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutOverwrites(t *testing.T) {
	var s Store[int]
	s.Put("k", 1)
	s.Put("k", 2)

	got, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestPutIfAbsentFirstWriteWins(t *testing.T) {
	var s Store[string]
	assert.True(t, s.PutIfAbsent("k", "first"))
	assert.False(t, s.PutIfAbsent("k", "second"))

	got, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestGetMissing(t *testing.T) {
	var s Store[int]
	got, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestDeleteAndLen(t *testing.T) {
	var s Store[int]
	s.Put("a", 1)
	s.Put("b", 2)
	assert.Equal(t, 2, s.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())

	s.Delete("a")
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("a")
	assert.False(t, ok)
}
