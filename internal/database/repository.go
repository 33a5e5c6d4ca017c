package database

import (
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/storage"
)

// OrderRepository archives submitted orders together with their proofs.
type OrderRepository interface {
	Save(order *entity.OrderContext) error
	SaveEvent(event entity.OrderEvent) error
	FindByID(id string) (*entity.OrderContext, error)
	Delete(id string) error
}

type fileOrderRepository struct {
	storage storage.FileStorage
}
