package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordSetAndAuthenticate(t *testing.T) {
	p, err := NewPassword("hunter2")
	require.NoError(t, err)

	require.True(t, p.Authenticate("hunter2"))
	require.False(t, p.Authenticate("hunter3"))
	require.False(t, p.Authenticate(""))
}

func TestPasswordEmptyRejected(t *testing.T) {
	_, err := NewPassword("")
	require.ErrorIs(t, err, ErrValidation)

	var p Password
	require.ErrorIs(t, p.Set(""), ErrValidation)
	require.False(t, p.Authenticate(""))
}

func TestPasswordReplacesHash(t *testing.T) {
	p, err := NewPassword("first")
	require.NoError(t, err)
	require.NoError(t, p.Set("second"))

	require.False(t, p.Authenticate("first"))
	require.True(t, p.Authenticate("second"))
}

func TestPasswordValueHidesNothingButHash(t *testing.T) {
	p, err := NewPassword("secret")
	require.NoError(t, err)

	v, err := p.Value()
	require.NoError(t, err)
	hash, ok := v.(string)
	require.True(t, ok)
	require.NotEqual(t, "secret", hash)
	require.NotContains(t, hash, "secret")

	var scanned Password
	require.NoError(t, scanned.Scan(hash))
	require.True(t, scanned.Authenticate("secret"))
}

func TestPasswordUnsetValueIsNull(t *testing.T) {
	var p Password
	v, err := p.Value()
	require.NoError(t, err)
	require.Nil(t, v)
}
