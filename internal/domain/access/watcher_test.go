package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDeliversAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exp := time.Now().Add(time.Hour)
	rec := &Record{TrialExpiresAt: &exp}

	ch := Watch(ctx, rec, 5*time.Millisecond)

	var first, second State
	select {
	case first = <-ch:
	case <-time.After(time.Second):
		t.Fatal("no state delivered")
	}
	select {
	case second = <-ch:
	case <-time.After(time.Second):
		t.Fatal("no second state delivered")
	}

	require.Equal(t, KindTrial, first.Kind)
	assert.LessOrEqual(t, second.TimeRemaining, first.TimeRemaining)

	cancel()
	for range ch {
		// drain until the watcher closes the channel
	}
}

func TestWatchDefaultsInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := Watch(ctx, nil, 0)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A tick may have raced the cancel; channel must still close.
			_, ok = <-ch
			assert.False(t, ok)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not close after cancel")
	}
}
