package access

import (
	"context"
	"time"
)

// Watch re-resolves rec on a fixed interval and delivers each state until
// ctx is canceled, at which point the channel closes. This backs live
// countdown displays; one second matches the UI refresh the product uses.
// A slow consumer only delays its own next tick, nothing is buffered up.
func Watch(ctx context.Context, rec *Record, interval time.Duration) <-chan State {
	if interval <= 0 {
		interval = time.Second
	}

	out := make(chan State, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case out <- Resolve(rec, now):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
