package worker

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type countingDesignService struct {
	calls atomic.Int32
	ttl   atomic.Int64
}

func (s *countingDesignService) ExpireSessions(ttl time.Duration) int {
	s.calls.Add(1)
	s.ttl.Store(int64(ttl))
	return 1
}

func (s *countingDesignService) CreateSession() entity.SessionResponse { return entity.SessionResponse{} }
func (s *countingDesignService) GetSession(string) (entity.SessionResponse, error) {
	return entity.SessionResponse{}, nil
}
func (s *countingDesignService) UploadDesign(string, entity.Side, io.Reader) (entity.PlacementView, error) {
	return entity.PlacementView{}, nil
}
func (s *countingDesignService) ClearDesign(string, entity.Side) (entity.PlacementView, error) {
	return entity.PlacementView{}, nil
}
func (s *countingDesignService) HandleGesture(string, entity.Side, entity.GestureEvent) (entity.PlacementView, error) {
	return entity.PlacementView{}, nil
}
func (s *countingDesignService) Align(string, entity.Side, entity.Direction) (entity.PlacementView, error) {
	return entity.PlacementView{}, nil
}
func (s *countingDesignService) Proof(string, entity.Side, string, string) ([]byte, error) {
	return nil, nil
}
func (s *countingDesignService) Export(string, string, string) (*entity.Export, error) {
	return &entity.Export{}, nil
}

func TestSessionCleanupWorker(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := &countingDesignService{}
	w := NewSessionCleanupWorker(svc, 5*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return svc.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, int64(time.Hour), svc.ttl.Load())
}
