package custody

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
)

// Holding records custody of the single unit of one prompt
type Holding struct {
	PromptId domain.PromptId `json:"promptId" bson:"promptId"`
	Owner    domain.Address  `json:"owner" bson:"owner"`
	Amount   int64           `json:"amount" bson:"amount"`
}

func (h *Holding) ToId() Id {
	return Id{PromptId: h.PromptId, Owner: h.Owner}
}

type Id struct {
	PromptId domain.PromptId `json:"promptId" bson:"promptId"`
	Owner    domain.Address  `json:"owner" bson:"owner"`
}

const escrowTag = "escrow"

// EscrowAddress derives the protocol-controlled holding identity for a
// prompt. It is not a principal: nothing signs for it, and the only way to
// move value out of it is a Grant carried by listing-engine code paths.
func EscrowAddress(id domain.PromptId) domain.Address {
	sum := sha256.Sum256([]byte(escrowTag + ":" + id.String()))
	return domain.Address("0x" + hex.EncodeToString(sum[:20]))
}

// Grant is the capability to move one escrowed unit. It can only be built
// from a prompt id, so authority follows the call path instead of a key.
type Grant struct {
	promptId domain.PromptId
}

func EscrowGrant(id domain.PromptId) Grant {
	return Grant{promptId: id}
}

func (g Grant) PromptId() domain.PromptId {
	return g.promptId
}

func (g Grant) Escrow() domain.Address {
	return EscrowAddress(g.promptId)
}

// Repo moves custody of prompt units. Every method either fully applies or
// leaves holdings untouched.
type Repo interface {
	Get(ctx ctx.Ctx, id Id) (*Holding, error)
	// Mint creates the one unit under owner; domain.ErrConflict if the
	// prompt was minted before
	Mint(ctx ctx.Ctx, promptId domain.PromptId, owner domain.Address) error
	// Transfer moves the unit between accounts, authorized by the caller
	// owning `from`; domain.ErrUnauthorized if from does not hold the unit
	Transfer(ctx ctx.Ctx, promptId domain.PromptId, from, to domain.Address) error
	// TransferFromEscrow moves the unit out of the derived escrow account,
	// authorized structurally by the grant
	TransferFromEscrow(ctx ctx.Ctx, grant Grant, to domain.Address) error
}
