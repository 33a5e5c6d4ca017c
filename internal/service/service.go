package service

import (
	"context"
	"io"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/database"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/compositor"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/kafka"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/mailer"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/notify"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/processor"
)

type PricingService interface {
	Catalog() entity.Catalog
	Shipping() entity.ShippingTable
	Resolve(product, color, size string) (entity.Product, entity.ColorVariant, error)
	Quote(sel entity.Selection) (entity.Quote, error)
}

type DesignService interface {
	CreateSession() entity.SessionResponse
	GetSession(id string) (entity.SessionResponse, error)
	UploadDesign(id string, side entity.Side, r io.Reader) (entity.PlacementView, error)
	ClearDesign(id string, side entity.Side) (entity.PlacementView, error)
	HandleGesture(id string, side entity.Side, ev entity.GestureEvent) (entity.PlacementView, error)
	Align(id string, side entity.Side, d entity.Direction) (entity.PlacementView, error)
	Proof(id string, side entity.Side, product, color string) ([]byte, error)
	Export(id string, product, color string) (*entity.Export, error)
	ExpireSessions(ttl time.Duration) int
}

type OrderService interface {
	Submit(ctx context.Context, sessionID string, form entity.OrderForm) (*entity.OrderResponse, error)
	GetOrder(id string) (*entity.OrderContext, error)
}

func NewPricingService(catalog entity.Catalog, shipping entity.ShippingTable) PricingService {
	return &pricingService{catalog: catalog, shipping: shipping}
}

func NewDesignService(sessions database.SessionRepository, decoder processor.ImageDecoder, comp *compositor.Compositor,
	pricing PricingService, bounds entity.Bounds, minSize int) DesignService {
	return &designService{
		sessions:   sessions,
		decoder:    decoder,
		compositor: comp,
		pricing:    pricing,
		bounds:     bounds,
		minSize:    minSize,
	}
}

func NewOrderService(design DesignService, pricing PricingService, repo database.OrderRepository,
	sink mailer.Mailer, producer kafka.Producer, notifier notify.Notifier) OrderService {
	return &orderService{
		design:   design,
		pricing:  pricing,
		repo:     repo,
		sink:     sink,
		producer: producer,
		notifier: notifier,
	}
}
