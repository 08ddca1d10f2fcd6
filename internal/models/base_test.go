package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesValueScan(t *testing.T) {
	t.Parallel()

	in := Attributes{"batting": "left-hand", "jersey": float64(18)}
	v, err := in.Value()
	require.NoError(t, err)

	var fromString Attributes
	require.NoError(t, fromString.Scan(v))
	assert.Equal(t, in, fromString)

	var fromBytes Attributes
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.Equal(t, in, fromBytes)
}

func TestAttributesEmpty(t *testing.T) {
	t.Parallel()

	var nilAttrs Attributes
	v, err := nilAttrs.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	var scanned Attributes
	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)
	assert.Error(t, scanned.Scan(42))
}
