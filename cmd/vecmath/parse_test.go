package main

import (
	"testing"

	"github.com/QYUbit/sarsim/pkg/vector"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	v, err := parseVector("2, -4.5")
	require.NoError(t, err)
	assert.Equal(t, vector.New(2, -4.5), v)

	_, err = parseVector("1,2,3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, vector.ErrInvalidShape))

	_, err = parseVector("7")
	assert.True(t, errors.Is(err, vector.ErrInvalidShape))

	_, err = parseVector("a,b")
	require.Error(t, err)
	assert.False(t, errors.Is(err, vector.ErrInvalidShape))
	assert.Contains(t, err.Error(), `parse vector "a,b"`)
}

func TestParseVectorsStopsAtFirstError(t *testing.T) {
	vs, err := parseVectors([]string{"1,1", "2,2"})
	require.NoError(t, err)
	assert.Equal(t, []vector.Vector2D{vector.New(1, 1), vector.New(2, 2)}, vs)

	vs, err = parseVectors([]string{"1,1", "x"})
	require.Error(t, err)
	assert.Nil(t, vs)
}
