package usecase

import (
	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain/activity"
	"github.com/prompthub/marketplace/domain/event"
)

type ActivityUseCaseCfg struct {
	ActivityRepo activity.Repo
}

type impl struct {
	activity activity.Repo
}

func New(cfg *ActivityUseCaseCfg) activity.UseCase {
	return &impl{
		activity: cfg.ActivityRepo,
	}
}

func (im *impl) FindAll(c ctx.Ctx, opts ...activity.FindAllOptionsFunc) ([]*event.Event, error) {
	return im.activity.FindAll(c, opts...)
}
