package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/database"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/kafka"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/mailer"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/notify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type orderService struct {
	design   DesignService
	pricing  PricingService
	repo     database.OrderRepository
	sink     mailer.Mailer
	producer kafka.Producer
	notifier notify.Notifier
}

// Submit validates the form, prices the order, renders the proofs and hands
// everything to the email sink. Only a delivery failure is reported to the
// customer through the notifier; archiving and event publishing are best effort.
func (s *orderService) Submit(ctx context.Context, sessionID string, form entity.OrderForm) (*entity.OrderResponse, error) {
	if err := ValidateForm(form); err != nil {
		return nil, err
	}

	product, _, err := s.pricing.Resolve(form.Product, form.Color, form.Size)
	if err != nil {
		return nil, err
	}

	export, err := s.design.Export(sessionID, form.Product, form.Color)
	if err != nil {
		return nil, err
	}
	if !export.HasFront && !export.HasBack && !form.ConfirmNoDesign {
		return nil, entity.ErrDesignConfirmationRequired
	}

	quote, err := s.pricing.Quote(entity.Selection{
		Product:  form.Product,
		Color:    form.Color,
		Size:     form.Size,
		Quantity: form.Quantity,
		Region:   form.Region,
		HasFront: export.HasFront,
		HasBack:  export.HasBack,
	})
	if err != nil {
		return nil, err
	}

	order := &entity.OrderContext{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Form:        form,
		ProductName: product.DisplayName,
		Quote:       quote,
		HasFront:    export.HasFront,
		HasBack:     export.HasBack,
		Front:       export.Front,
		Back:        export.Back,
		CreatedAt:   time.Now(),
	}
	log := logrus.WithFields(logrus.Fields{"order_id": order.ID, "session_id": sessionID})

	if err := s.sink.Send(ctx, order); err != nil {
		log.Errorf("Order delivery failed: %v", err)
		s.notifier.Notify(ctx, notify.Notification{
			Level:   notify.LevelError,
			Message: "Your order could not be sent. Please try again.",
			Fields:  map[string]interface{}{"order_id": order.ID},
		})
		return nil, fmt.Errorf("send order %s: %w", order.ID, err)
	}

	s.archive(order, log)
	if err := s.producer.SendMessage(ctx, order.ID, eventFor(order)); err != nil {
		log.Errorf("Failed to publish order event: %v", err)
	}

	s.notifier.Notify(ctx, notify.Notification{
		Level:   notify.LevelInfo,
		Message: "Order placed",
		Fields:  map[string]interface{}{"order_id": order.ID, "total": quote.Total},
	})
	log.WithField("total", quote.Total).Info("Order submitted")

	return &entity.OrderResponse{ID: order.ID, Status: "sent", Quote: quote}, nil
}

// archive stores the order. A partially written archive is removed so that
// lookups never see proofs without metadata.
func (s *orderService) archive(order *entity.OrderContext, log *logrus.Entry) {
	if err := s.repo.Save(order); err != nil {
		log.Errorf("Failed to archive order: %v", err)
		if err := s.repo.Delete(order.ID); err != nil {
			log.Errorf("Failed to remove partial archive: %v", err)
		}
	}
}

func (s *orderService) GetOrder(id string) (*entity.OrderContext, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
	}
	return order, nil
}

func eventFor(order *entity.OrderContext) entity.OrderEvent {
	return entity.OrderEvent{
		OrderID:   order.ID,
		SessionID: order.SessionID,
		Product:   order.Form.Product,
		Color:     order.Form.Color,
		Size:      order.Form.Size,
		Quantity:  order.Form.Quantity,
		Region:    order.Form.Region,
		Total:     order.Quote.Total,
		HasFront:  order.HasFront,
		HasBack:   order.HasBack,
		CreatedAt: order.CreatedAt,
	}
}
