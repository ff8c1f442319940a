package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	l := StringList{"spaghetti pasta", "eggs"}
	v, err := l.Value()
	require.NoError(t, err)

	var got StringList
	require.NoError(t, got.Scan(v))
	assert.Equal(t, l, got)

	var fromBytes StringList
	require.NoError(t, fromBytes.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, fromBytes)
}

func TestStringListNil(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var got StringList
	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got)

	assert.Error(t, got.Scan(42))
}
