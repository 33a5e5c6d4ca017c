package service

import (
	"fmt"
	"io"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/database"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/compositor"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/placement"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/processor"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type designService struct {
	sessions   database.SessionRepository
	decoder    processor.ImageDecoder
	compositor *compositor.Compositor
	pricing    PricingService
	bounds     entity.Bounds
	minSize    int
}

func (s *designService) CreateSession() entity.SessionResponse {
	session := database.NewSession(uuid.New().String(), s.bounds, s.minSize)
	s.sessions.Create(session)
	logrus.WithField("session_id", session.ID).Info("Design session created")
	return session.View()
}

func (s *designService) GetSession(id string) (entity.SessionResponse, error) {
	session, err := s.session(id)
	if err != nil {
		return entity.SessionResponse{}, err
	}
	session.Lock()
	defer session.Unlock()
	return session.View(), nil
}

// UploadDesign decodes r outside the session lock. If a newer upload was
// applied or the side was cleared meanwhile, the result is dropped and
// ErrUploadSuperseded is returned with the current view.
func (s *designService) UploadDesign(id string, side entity.Side, r io.Reader) (entity.PlacementView, error) {
	session, err := s.session(id)
	if err != nil {
		return entity.PlacementView{}, err
	}

	session.Lock()
	ticket := session.Placement(side).BeginUpload()
	session.Unlock()

	img, decodeErr := s.decoder.Decode(r)

	session.Lock()
	defer session.Unlock()
	session.LastSeen = time.Now()
	c := session.Controller(side)
	if decodeErr != nil {
		return c.Placement().View(c.Phase()), decodeErr
	}
	if !c.Placement().CompleteUpload(ticket, img) {
		logrus.WithFields(logrus.Fields{"session_id": id, "side": side}).Info("Superseded upload dropped")
		return c.Placement().View(c.Phase()), entity.ErrUploadSuperseded
	}
	return c.Placement().View(c.Phase()), nil
}

func (s *designService) ClearDesign(id string, side entity.Side) (entity.PlacementView, error) {
	return s.withController(id, side, func(c *placement.Controller) error {
		c.Placement().Clear()
		return nil
	})
}

func (s *designService) HandleGesture(id string, side entity.Side, ev entity.GestureEvent) (entity.PlacementView, error) {
	return s.withController(id, side, func(c *placement.Controller) error {
		if !c.Handle(ev) {
			logrus.WithFields(logrus.Fields{"session_id": id, "side": side, "kind": ev.Kind}).Debug("Gesture ignored")
		}
		return nil
	})
}

func (s *designService) Align(id string, side entity.Side, d entity.Direction) (entity.PlacementView, error) {
	return s.withController(id, side, func(c *placement.Controller) error {
		_, err := placement.Align(c.Placement(), d)
		return err
	})
}

// Proof renders one side onto the mockup of the chosen product color.
func (s *designService) Proof(id string, side entity.Side, product, color string) ([]byte, error) {
	_, variant, err := s.pricing.Resolve(product, color, "")
	if err != nil {
		return nil, err
	}
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	base, err := s.decoder.LoadMockup(variant.MockupPath(side))
	if err != nil {
		return nil, err
	}

	session.Lock()
	out := s.compositor.Compose(base, session.Placement(side))
	session.Unlock()

	return compositor.EncodePNG(out)
}

// Export renders both proofs for an order. A side whose mockup cannot be
// loaded yields an empty artifact instead of failing the order.
func (s *designService) Export(id string, product, color string) (*entity.Export, error) {
	_, variant, err := s.pricing.Resolve(product, color, "")
	if err != nil {
		return nil, err
	}
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	export := &entity.Export{
		HasFront: session.Placement(entity.SideFront).IsPresent(),
		HasBack:  session.Placement(entity.SideBack).IsPresent(),
	}
	for _, side := range []entity.Side{entity.SideFront, entity.SideBack} {
		artifact := entity.Artifact{Side: side}
		p := session.Placement(side)
		if p.IsPresent() {
			artifact.Data = s.render(variant.MockupPath(side), p)
		}
		if side == entity.SideFront {
			export.Front = artifact
		} else {
			export.Back = artifact
		}
	}
	return export, nil
}

func (s *designService) render(mockup string, p *placement.Placement) []byte {
	log := logrus.WithFields(logrus.Fields{"mockup": mockup, "side": p.Side()})
	base, err := s.decoder.LoadMockup(mockup)
	if err != nil {
		log.Warnf("Mockup unavailable, proof skipped: %v", err)
		return nil
	}
	data, err := compositor.EncodePNG(s.compositor.Compose(base, p))
	if err != nil {
		log.Warnf("Proof encoding failed: %v", err)
		return nil
	}
	return data
}

func (s *designService) ExpireSessions(ttl time.Duration) int {
	return s.sessions.Expire(time.Now().Add(-ttl))
}

func (s *designService) session(id string) (*database.Session, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, id)
	}
	return session, nil
}

func (s *designService) withController(id string, side entity.Side, fn func(c *placement.Controller) error) (entity.PlacementView, error) {
	session, err := s.session(id)
	if err != nil {
		return entity.PlacementView{}, err
	}
	session.Lock()
	defer session.Unlock()

	session.LastSeen = time.Now()
	c := session.Controller(side)
	err = fn(c)
	return c.Placement().View(c.Phase()), err
}
