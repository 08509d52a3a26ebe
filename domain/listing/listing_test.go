package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPrice(t *testing.T) {
	assert.Equal(t, "1", (&Listing{Price: 1_000_000_000}).DisplayPrice())
	assert.Equal(t, "0.000000001", (&Listing{Price: 1}).DisplayPrice())
	assert.Equal(t, "1.5", (&Listing{Price: 1_500_000_000}).DisplayPrice())
	assert.Equal(t, "0", (&Listing{}).DisplayPrice())
}
