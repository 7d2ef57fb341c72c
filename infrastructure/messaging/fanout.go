package messaging

import (
	"context"
	"errors"

	"github.com/samiullah014/stan-task/domain/ports"
)

// FanoutTaskEventPublisher sends every event to all publishers. One failing
// transport does not stop the others; the errors are joined.
type FanoutTaskEventPublisher struct {
	publishers []ports.TaskEventPublisher
}

func NewFanoutTaskEventPublisher(publishers ...ports.TaskEventPublisher) *FanoutTaskEventPublisher {
	kept := make([]ports.TaskEventPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return &FanoutTaskEventPublisher{publishers: kept}
}

func (f *FanoutTaskEventPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.PublishTaskEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ ports.TaskEventPublisher = (*FanoutTaskEventPublisher)(nil)
