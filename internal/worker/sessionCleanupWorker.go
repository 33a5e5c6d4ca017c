package worker

import (
	"context"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/service"
	"github.com/sirupsen/logrus"
)

// SessionCleanupWorker drops design sessions nobody has touched for ttl.
type SessionCleanupWorker struct {
	designService service.DesignService
	interval      time.Duration
	ttl           time.Duration
}

func NewSessionCleanupWorker(designService service.DesignService, interval, ttl time.Duration) *SessionCleanupWorker {
	return &SessionCleanupWorker{
		designService: designService,
		interval:      interval,
		ttl:           ttl,
	}
}

func (w *SessionCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Session cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Session cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *SessionCleanupWorker) cleanup() {
	if n := w.designService.ExpireSessions(w.ttl); n > 0 {
		logrus.Infof("Expired %d idle design sessions", n)
	}
}
