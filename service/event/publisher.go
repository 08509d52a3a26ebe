package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain/event"
)

const notifyTimeout = 3 * time.Second

type impl struct {
	subscribers []event.Subscriber
	workerPool  *goroutines.Pool
}

// NewPublisher fans out events to subscribers on a worker pool, publishing
// never blocks the caller longer than notifyTimeout
func NewPublisher(subscribers ...event.Subscriber) event.Publisher {
	return &impl{
		subscribers: subscribers,
		workerPool:  goroutines.NewPool(32, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(8)),
	}
}

func (im *impl) Publish(c ctx.Ctx, ev *event.Event) error {
	if ev.EventId == "" {
		ev.EventId = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	for _, sub := range im.subscribers {
		sub := sub
		ev := *ev
		err := im.workerPool.ScheduleWithTimeout(notifyTimeout, func() {
			bgCtx := ctx.WithValues(ctx.Background(), map[string]interface{}{
				"eventId":   ev.EventId,
				"eventType": ev.Type,
			})
			if err := sub.Notify(bgCtx, &ev); err != nil {
				bgCtx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to Notify")
			}
		})
		if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"eventId":   ev.EventId,
				"eventType": ev.Type,
			}).Error("failed to ScheduleWithTimeout")
			return xerrors.Errorf("schedule %s notify: %w", ev.Type, err)
		}
	}

	return nil
}
