package main

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRunBackgroundWaitsForCancelledWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var finished atomic.Bool

	runBackground(ctx, &wg, zap.NewNop(), "slow job", func(ctx context.Context) error {
		<-ctx.Done()
		// simulates an in-flight write finishing after cancellation
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
		return errors.New("interrupted")
	})

	cancel()
	wg.Wait()
	assert.True(t, finished.Load())
}
