package service

import (
	"context"
	"time"
)

// Delayer pauses before a reply is returned, imitating a model thinking.
type Delayer interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits for the same duration every time. Zero or negative never
// blocks.
type FixedDelay time.Duration

const NoDelay = FixedDelay(0)

func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
