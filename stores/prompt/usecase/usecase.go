package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/custody"
	"github.com/prompthub/marketplace/domain/event"
	"github.com/prompthub/marketplace/domain/prompt"
	"github.com/prompthub/marketplace/service/query"
)

type PromptUseCaseCfg struct {
	PromptRepo  prompt.Repo
	CustodyRepo custody.Repo
	Query       query.Mongo
	Publisher   event.Publisher
}

type impl struct {
	prompt    prompt.Repo
	custody   custody.Repo
	query     query.Mongo
	publisher event.Publisher
}

func New(cfg *PromptUseCaseCfg) prompt.UseCase {
	return &impl{
		prompt:    cfg.PromptRepo,
		custody:   cfg.CustodyRepo,
		query:     cfg.Query,
		publisher: cfg.Publisher,
	}
}

func (im *impl) Register(c ctx.Ctx, creator domain.Address, mintId domain.MintId, metadataUri string, royaltyBps domain.Bps) (*prompt.Prompt, error) {
	if royaltyBps > domain.MaxRoyaltyBps {
		return nil, domain.ErrInvalidRoyalty
	}
	if len(metadataUri) == 0 || len(metadataUri) > prompt.MaxMetadataUriLen {
		return nil, domain.ErrInvalidUri
	}
	if creator.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}

	if mintId == "" {
		mintId = domain.MintId(uuid.New().String())
	}

	p := &prompt.Prompt{
		PromptId:    domain.ToPromptId(mintId),
		MintId:      mintId,
		Creator:     creator.ToLower(),
		MetadataUri: metadataUri,
		RoyaltyBps:  royaltyBps,
		CreatedAt:   time.Now(),
	}

	// the registry record and the creator's unit come into existence together
	err := im.query.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.prompt.Create(c, p); err != nil {
			return err
		}
		if err := im.custody.Mint(c, p.PromptId, p.Creator); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if err != domain.ErrConflict {
			c.WithFields(log.Fields{
				"promptId": p.PromptId,
				"creator":  creator,
				"err":      err,
			}).Error("failed to register prompt")
		}
		return nil, err
	}

	if err := im.publisher.Publish(c, &event.Event{
		Type:        event.TypeItemCreated,
		PromptId:    p.PromptId,
		Creator:     p.Creator,
		MetadataUri: p.MetadataUri,
	}); err != nil {
		c.WithFields(log.Fields{
			"promptId": p.PromptId,
			"err":      err,
		}).Error("failed to publish item created event")
	}

	return p, nil
}

func (im *impl) Get(c ctx.Ctx, id prompt.Id) (*prompt.Prompt, error) {
	return im.prompt.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...prompt.FindAllOptionsFunc) ([]*prompt.Prompt, error) {
	return im.prompt.FindAll(c, opts...)
}
