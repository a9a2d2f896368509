package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySet_Verify(t *testing.T) {
	s := NewKeySet([]byte("pepper"), []string{"key-one", "key-two"})

	assert.True(t, s.Verify("key-one"))
	assert.True(t, s.Verify("key-two"))
	assert.False(t, s.Verify("key-three"))
	assert.False(t, s.Verify(""))
}

func TestKeySet_Empty(t *testing.T) {
	s := NewKeySet([]byte("pepper"), nil)
	assert.False(t, s.Verify("anything"))
}

func TestKeySet_PepperChangesDigest(t *testing.T) {
	a := NewKeySet([]byte("pepper-a"), []string{"key"})
	b := NewKeySet([]byte("pepper-b"), []string{"key"})

	assert.True(t, a.Verify("key"))
	assert.True(t, b.Verify("key"))
	assert.NotEqual(t, a.hashes[0], b.hashes[0])
}
