package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/base/ptr"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/custody"
	"github.com/prompthub/marketplace/domain/event"
	"github.com/prompthub/marketplace/domain/ledger"
	"github.com/prompthub/marketplace/domain/listing"
	"github.com/prompthub/marketplace/domain/marketplace"
	"github.com/prompthub/marketplace/domain/prompt"
	"github.com/prompthub/marketplace/service/query"
)

type ListingUseCaseCfg struct {
	ListingRepo     listing.Repo
	PromptRepo      prompt.Repo
	CustodyRepo     custody.Repo
	LedgerRepo      ledger.Repo
	MarketplaceRepo marketplace.Repo
	Query           query.Mongo
	Publisher       event.Publisher
}

type impl struct {
	listing     listing.Repo
	prompt      prompt.Repo
	custody     custody.Repo
	ledger      ledger.Repo
	marketplace marketplace.Repo
	query       query.Mongo
	publisher   event.Publisher
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listing:     cfg.ListingRepo,
		prompt:      cfg.PromptRepo,
		custody:     cfg.CustodyRepo,
		ledger:      cfg.LedgerRepo,
		marketplace: cfg.MarketplaceRepo,
		query:       cfg.Query,
		publisher:   cfg.Publisher,
	}
}

func (im *impl) Create(c ctx.Ctx, seller domain.Address, promptId domain.PromptId, price uint64, description string) (*listing.Listing, error) {
	if price == 0 {
		return nil, domain.ErrInvalidPrice
	}
	if seller.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}

	if _, err := im.prompt.FindOne(c, prompt.Id{PromptId: promptId}); err != nil {
		return nil, err
	}

	if cur, err := im.listing.FindOne(c, listing.Id{PromptId: promptId}); err == nil && cur.IsActive {
		return nil, domain.ErrConflict
	} else if err != nil && err != domain.ErrNotFound {
		return nil, err
	}

	l := &listing.Listing{
		PromptId:    promptId,
		Instance:    uuid.New().String(),
		Seller:      seller.ToLower(),
		Price:       price,
		Description: description,
		IsActive:    true,
		ListedAt:    time.Now(),
	}

	// escrowing the unit and recording the listing commit together, so an
	// active listing always implies escrowed custody
	err := im.query.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.custody.Transfer(c, promptId, l.Seller, custody.EscrowAddress(promptId)); err != nil {
			return err
		}
		return im.listing.Upsert(c, l)
	})
	if err != nil {
		if err != domain.ErrUnauthorized {
			c.WithFields(log.Fields{
				"promptId": promptId,
				"seller":   seller,
				"err":      err,
			}).Error("failed to create listing")
		}
		return nil, err
	}

	if err := im.publisher.Publish(c, &event.Event{
		Type:     event.TypePromptListed,
		PromptId: promptId,
		Seller:   l.Seller,
		Price:    price,
	}); err != nil {
		c.WithFields(log.Fields{
			"promptId": promptId,
			"err":      err,
		}).Error("failed to publish prompt listed event")
	}

	return l, nil
}

func (im *impl) Update(c ctx.Ctx, seller domain.Address, promptId domain.PromptId, terms listing.Terms) error {
	l, err := im.listing.FindOne(c, listing.Id{PromptId: promptId})
	if err != nil {
		return err
	}
	if !l.IsActive {
		return domain.ErrNotForSale
	}
	if !l.Seller.Equals(seller) {
		return domain.ErrUnauthorized
	}
	if terms.Price != nil && *terms.Price == 0 {
		return domain.ErrInvalidPrice
	}
	if terms.Price == nil && terms.Description == nil {
		return nil
	}

	return im.listing.Update(c, l.ToId(), listing.Patchable{
		Price:       terms.Price,
		Description: terms.Description,
	})
}

func (im *impl) Purchase(c ctx.Ctx, buyer domain.Address, promptId domain.PromptId) (*listing.SettlementReceipt, error) {
	if buyer.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	buyer = buyer.ToLower()

	l, err := im.listing.FindOne(c, listing.Id{PromptId: promptId})
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotForSale
	} else if err != nil {
		return nil, err
	}
	if !l.IsActive {
		return nil, domain.ErrNotForSale
	}
	if l.Seller.Equals(buyer) {
		return nil, domain.ErrBadParamInput
	}

	p, err := im.prompt.FindOne(c, prompt.Id{PromptId: promptId})
	if err != nil {
		return nil, err
	}

	cfg, err := im.marketplace.Get(c)
	if err != nil {
		return nil, err
	}

	platformFee, royalty, sellerAmount, err := split(l.Price, cfg.FeeBps, p.RoyaltyBps)
	if err != nil {
		c.WithFields(log.Fields{
			"promptId":   promptId,
			"price":      l.Price,
			"feeBps":     cfg.FeeBps,
			"royaltyBps": p.RoyaltyBps,
		}).Error("settlement split underflow")
		return nil, err
	}

	receipt := &listing.SettlementReceipt{
		PromptId:     promptId,
		Instance:     l.Instance,
		Buyer:        buyer,
		Seller:       l.Seller,
		Creator:      p.Creator,
		Admin:        cfg.Admin,
		Price:        l.Price,
		PlatformFee:  platformFee,
		Royalty:      royalty,
		SellerAmount: sellerAmount,
	}

	grant := custody.EscrowGrant(promptId)
	err = im.query.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.ledger.Transfer(c, buyer, cfg.Admin, platformFee); err != nil {
			return err
		}
		if err := im.ledger.Transfer(c, buyer, p.Creator, royalty); err != nil {
			return err
		}
		if err := im.ledger.Transfer(c, buyer, l.Seller, sellerAmount); err != nil {
			return err
		}
		if err := im.custody.TransferFromEscrow(c, grant, buyer); err != nil {
			return err
		}
		if err := im.listing.Update(c, l.ToId(), listing.Patchable{
			IsActive: ptr.Bool(false),
			ClosedAt: ptr.Time(time.Now()),
		}); err != nil {
			return err
		}
		if err := im.prompt.RecordSale(c, p.ToId(), l.Price); err != nil {
			return err
		}
		if platformFee > 0 {
			return im.marketplace.AddTreasury(c, platformFee)
		}
		return nil
	})
	if err != nil {
		if err != domain.ErrInsufficientFunds {
			c.WithFields(log.Fields{
				"promptId": promptId,
				"buyer":    buyer,
				"err":      err,
			}).Error("failed to settle purchase")
		}
		return nil, err
	}

	if err := im.publisher.Publish(c, &event.Event{
		Type:     event.TypePromptSold,
		PromptId: promptId,
		Seller:   l.Seller,
		Buyer:    buyer,
		Price:    l.Price,
	}); err != nil {
		c.WithFields(log.Fields{
			"promptId": promptId,
			"err":      err,
		}).Error("failed to publish prompt sold event")
	}

	return receipt, nil
}

func (im *impl) Delist(c ctx.Ctx, seller domain.Address, promptId domain.PromptId) error {
	l, err := im.listing.FindOne(c, listing.Id{PromptId: promptId})
	if err != nil {
		return err
	}
	if !l.IsActive {
		return domain.ErrNotForSale
	}
	if !l.Seller.Equals(seller) {
		return domain.ErrUnauthorized
	}

	grant := custody.EscrowGrant(promptId)
	err = im.query.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.custody.TransferFromEscrow(c, grant, l.Seller); err != nil {
			return err
		}
		return im.listing.Update(c, l.ToId(), listing.Patchable{
			IsActive: ptr.Bool(false),
			ClosedAt: ptr.Time(time.Now()),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"promptId": promptId,
			"seller":   seller,
			"err":      err,
		}).Error("failed to delist prompt")
		return err
	}

	if err := im.publisher.Publish(c, &event.Event{
		Type:     event.TypePromptDelisted,
		PromptId: promptId,
		Seller:   l.Seller,
	}); err != nil {
		c.WithFields(log.Fields{
			"promptId": promptId,
			"err":      err,
		}).Error("failed to publish prompt delisted event")
	}

	return nil
}

func (im *impl) Get(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	return im.listing.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.listing.FindAll(c, opts...)
}
