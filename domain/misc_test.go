package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress(t *testing.T) {
	a := Address("0xAbCd000000000000000000000000000000000001")
	b := Address("0xabcd000000000000000000000000000000000001")

	assert.Equal(t, b, a.ToLower())
	assert.True(t, a.Equals(b))
	assert.False(t, a.IsEmpty())
	assert.True(t, Address("").IsEmpty())
}

func TestToPromptId(t *testing.T) {
	a := ToPromptId("mint-1")
	b := ToPromptId("mint-2")

	assert.Equal(t, a, ToPromptId("mint-1"))
	assert.NotEqual(t, a, b)
	assert.Len(t, string(a), 64)
}
