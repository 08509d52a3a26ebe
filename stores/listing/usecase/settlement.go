package usecase

import (
	"github.com/prompthub/marketplace/domain"
)

// bpsShare computes floor(price * bps / 10000) without overflowing uint64
// for any price. Splitting the quotient and remainder keeps every
// intermediate product below 2^64 since bps <= 10000.
func bpsShare(price uint64, bps domain.Bps) uint64 {
	q := price / domain.BpsDenominator
	r := price % domain.BpsDenominator
	return q*uint64(bps) + r*uint64(bps)/domain.BpsDenominator
}

// split carves a purchase price into platform fee, creator royalty, and
// seller proceeds. The seller amount comes from checked subtraction: if the
// two cuts together exceed the price the settlement fails with
// domain.ErrArithmetic rather than clamping.
func split(price uint64, feeBps, royaltyBps domain.Bps) (platformFee, royalty, sellerAmount uint64, err error) {
	platformFee = bpsShare(price, feeBps)
	royalty = bpsShare(price, royaltyBps)

	rem := price
	if platformFee > rem {
		return 0, 0, 0, domain.ErrArithmetic
	}
	rem -= platformFee
	if royalty > rem {
		return 0, 0, 0, domain.ErrArithmetic
	}
	rem -= royalty
	return platformFee, royalty, rem, nil
}
