package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bookreview/review-server-go/internal/config"
	"github.com/bookreview/review-server-go/internal/repository"
)

// Locker serializes sweeps across replicas.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Unlock(ctx context.Context, key, token string) error
}

// CleanupJob purges expired admin sessions. Expired sessions are already
// refused at lookup time; this only keeps the table from growing.
type CleanupJob struct {
	adminSessionRepo repository.AdminSessionRepository
	locker           Locker
	interval         time.Duration
	done             chan struct{}
}

// NewCleanupJob builds the job. locker may be nil for a single replica.
func NewCleanupJob(
	adminSessionRepo repository.AdminSessionRepository,
	locker Locker,
	interval time.Duration,
) *CleanupJob {
	return &CleanupJob{
		adminSessionRepo: adminSessionRepo,
		locker:           locker,
		interval:         interval,
		done:             make(chan struct{}),
	}
}

func (j *CleanupJob) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("cleanup job started")
}

func (j *CleanupJob) Stop() {
	close(j.done)
	log.Info().Msg("cleanup job stopped")
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.cleanup()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.cleanup()
		}
	}
}

func (j *CleanupJob) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), config.CleanupJobTimeout)
	defer cancel()

	if j.locker != nil {
		token, ok, err := j.locker.TryLock(ctx, config.CleanupLockKey, config.CleanupLockTTL)
		if err != nil {
			log.Error().Err(err).Msg("failed to acquire cleanup lock")
			return
		}
		if !ok {
			log.Debug().Msg("cleanup skipped, another replica holds the lock")
			return
		}
		defer func() {
			if err := j.locker.Unlock(ctx, config.CleanupLockKey, token); err != nil {
				log.Warn().Err(err).Msg("failed to release cleanup lock")
			}
		}()
	}

	j.runCleanup(ctx, "admin sessions", j.adminSessionRepo.DeleteExpired)
}

func (j *CleanupJob) runCleanup(ctx context.Context, name string, fn func(context.Context) (int64, error)) {
	count, err := fn(ctx)
	if err != nil {
		log.Error().Err(err).Msgf("failed to cleanup %s", name)
	} else if count > 0 {
		log.Info().Int64("count", count).Msgf("cleaned up %s", name)
	}
}
