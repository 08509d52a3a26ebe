package custody

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prompthub/marketplace/domain"
)

func TestEscrowAddress(t *testing.T) {
	a := EscrowAddress("prompt-a")
	b := EscrowAddress("prompt-b")

	// deterministic, prompt-scoped, address-shaped
	assert.Equal(t, a, EscrowAddress("prompt-a"))
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(string(a), "0x"))
	assert.Len(t, string(a), 42)
}

func TestEscrowGrant(t *testing.T) {
	id := domain.PromptId("prompt-a")
	g := EscrowGrant(id)

	assert.Equal(t, id, g.PromptId())
	assert.Equal(t, EscrowAddress(id), g.Escrow())
}
