package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
	mQuery "github.com/prompthub/marketplace/service/query/mocks"
)

// amounts above the signed 64-bit range would flip sign inside the mongo
// updater, so the repo rejects them outright
func TestAddTreasuryAmountOverflowsInt64(t *testing.T) {
	im := New(&mQuery.Mongo{})

	err := im.AddTreasury(ctx.Background(), uint64(math.MaxInt64)+1)
	assert.Equal(t, domain.ErrBadParamInput, err)
}
