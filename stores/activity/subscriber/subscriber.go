package subscriber

import (
	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain/activity"
	"github.com/prompthub/marketplace/domain/event"
)

type impl struct {
	activity activity.Repo
}

// New creates a subscriber persisting every published event into the
// activity feed
func New(activity activity.Repo) event.Subscriber {
	return &impl{
		activity: activity,
	}
}

func (im *impl) Notify(c ctx.Ctx, ev *event.Event) error {
	if err := im.activity.Insert(c, ev); err != nil {
		c.WithFields(log.Fields{
			"eventId": ev.EventId,
			"type":    ev.Type,
			"err":     err,
		}).Error("persist activity failed")
		return err
	}
	return nil
}
