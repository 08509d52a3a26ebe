package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// MintId is the identity of the underlying one-of-one token
type MintId string

func (m MintId) String() string {
	return string(m)
}

// PromptId is derived deterministically from the mint identity
type PromptId string

func (i PromptId) String() string {
	return string(i)
}

const promptIdTag = "prompt"

// ToPromptId derives the prompt record key from the mint identity
func ToPromptId(mint MintId) PromptId {
	sum := sha256.Sum256([]byte(promptIdTag + ":" + mint.String()))
	return PromptId(hex.EncodeToString(sum[:]))
}

// Bps is a rate in basis points, 1/10000
type Bps uint16

const (
	BpsDenominator = 10000

	// hard caps from the settlement design, 10% each
	MaxFeeBps     Bps = 1000
	MaxRoyaltyBps Bps = 1000
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)
