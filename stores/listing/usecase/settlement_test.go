package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prompthub/marketplace/domain"
)

func TestBpsShare(t *testing.T) {
	assert.Equal(t, uint64(50), bpsShare(1000, 500))
	assert.Equal(t, uint64(25), bpsShare(1000, 250))
	assert.Equal(t, uint64(0), bpsShare(1000, 0))
	assert.Equal(t, uint64(1000), bpsShare(1000, 10000))

	// floors, never rounds
	assert.Equal(t, uint64(0), bpsShare(1, 500))
	assert.Equal(t, uint64(0), bpsShare(19, 500))
	assert.Equal(t, uint64(1), bpsShare(20, 500))
	assert.Equal(t, uint64(4), bpsShare(99, 500))

	// no intermediate overflow near the top of the range
	assert.Equal(t, uint64(math.MaxUint64/20), bpsShare(math.MaxUint64, 500))
	assert.Equal(t, uint64(math.MaxUint64), bpsShare(math.MaxUint64, 10000))
}

func TestSplit(t *testing.T) {
	platformFee, royalty, sellerAmount, err := split(1000, 500, 250)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), platformFee)
	assert.Equal(t, uint64(25), royalty)
	assert.Equal(t, uint64(925), sellerAmount)

	// zero rates pass everything to the seller
	platformFee, royalty, sellerAmount, err = split(777, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), platformFee)
	assert.Equal(t, uint64(0), royalty)
	assert.Equal(t, uint64(777), sellerAmount)

	// flooring keeps dust with the seller
	platformFee, royalty, sellerAmount, err = split(999, 500, 250)
	require.NoError(t, err)
	assert.Equal(t, uint64(49), platformFee)
	assert.Equal(t, uint64(24), royalty)
	assert.Equal(t, uint64(926), sellerAmount)
}

func TestSplitConservation(t *testing.T) {
	prices := []uint64{1, 2, 19, 20, 999, 1000, 12345, 99999999, math.MaxUint64}
	rates := []domain.Bps{0, 1, 250, 500, 999, 1000}

	for _, price := range prices {
		for _, feeBps := range rates {
			for _, royaltyBps := range rates {
				platformFee, royalty, sellerAmount, err := split(price, feeBps, royaltyBps)
				require.NoError(t, err)
				assert.Equal(t, price, platformFee+royalty+sellerAmount,
					"price %d fee %d royalty %d", price, feeBps, royaltyBps)
			}
		}
	}
}

func TestSplitUnderflow(t *testing.T) {
	// both cuts at full denominator claim the whole price twice over
	_, _, _, err := split(1000, 10000, 10000)
	assert.Equal(t, domain.ErrArithmetic, err)

	// the fee consumes everything and the royalty still floors to a unit
	_, _, _, err = split(10000, 10000, 1)
	assert.Equal(t, domain.ErrArithmetic, err)

	// at a smaller price the same royalty rate floors to zero and the
	// split degenerates instead of underflowing
	platformFee, royalty, sellerAmount, err := split(1000, 10000, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), platformFee)
	assert.Equal(t, uint64(0), royalty)
	assert.Equal(t, uint64(0), sellerAmount)
}
