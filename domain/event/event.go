package event

import (
	"time"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
)

type Type string

const (
	TypeItemCreated    Type = "item_created"
	TypePromptListed   Type = "prompt_listed"
	TypePromptSold     Type = "prompt_sold"
	TypePromptDelisted Type = "prompt_delisted"
)

// Event is a notification emitted as part of a successful commit. Observers
// consume them; protocol correctness never depends on them.
type Event struct {
	EventId     string          `json:"eventId" bson:"eventId"`
	Type        Type            `json:"type" bson:"type"`
	PromptId    domain.PromptId `json:"promptId" bson:"promptId"`
	Creator     domain.Address  `json:"creator,omitempty" bson:"creator,omitempty"`
	Seller      domain.Address  `json:"seller,omitempty" bson:"seller,omitempty"`
	Buyer       domain.Address  `json:"buyer,omitempty" bson:"buyer,omitempty"`
	MetadataUri string          `json:"metadataUri,omitempty" bson:"metadataUri,omitempty"`
	Price       uint64          `json:"price,omitempty" bson:"price,omitempty"`
	CreatedAt   time.Time       `json:"createdAt" bson:"createdAt"`
}

type Subscriber interface {
	Notify(ctx ctx.Ctx, ev *Event) error
}

type Publisher interface {
	Publish(ctx ctx.Ctx, ev *Event) error
}
