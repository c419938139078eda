package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ResetTokenCleaner is the part of the user repository the job needs.
type ResetTokenCleaner interface {
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

const cleanupTimeout = 30 * time.Second

// CleanupExpiredResetTokens runs one pass and returns the cleared count.
func CleanupExpiredResetTokens(ctx context.Context, repo ResetTokenCleaner) int64 {
	ctx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()

	n, err := repo.ClearExpiredResetTokens(ctx, time.Now())
	if err != nil {
		log.Printf("[CLEANUP ERROR] clearing expired reset tokens: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d expired reset tokens cleared", n)
	}
	return n
}

// StartResetTokenCleanupScheduler registers the cleanup on spec (standard
// cron or descriptors such as @hourly) and starts the scheduler. The caller
// stops it on shutdown.
func StartResetTokenCleanupScheduler(spec string, repo ResetTokenCleaner) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() {
		CleanupExpiredResetTokens(context.Background(), repo)
	}); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[INFO] reset token cleanup scheduled (%s)", spec)
	return c, nil
}
