package database

import (
	"bytes"
	"encoding/json"
	"os"
	"path"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/storage"
)

func NewOrderRepository(storage storage.FileStorage) OrderRepository {
	return &fileOrderRepository{storage: storage}
}

// Save writes the proofs first and sets their paths on the order, then the
// order metadata.
func (r *fileOrderRepository) Save(order *entity.OrderContext) error {
	for _, a := range []*entity.Artifact{&order.Front, &order.Back} {
		if a.Empty() {
			continue
		}
		a.Path = r.proofPath(order.ID, a.Side)
		if err := r.storage.Save(a.Path, bytes.NewReader(a.Data)); err != nil {
			return err
		}
	}

	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return r.storage.Save(r.metadataPath(order.ID), bytes.NewReader(data))
}

// SaveEvent records an order event received from the broker.
func (r *fileOrderRepository) SaveEvent(event entity.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.storage.Save(path.Join("archive", event.OrderID+".json"), bytes.NewReader(data))
}

// FindByID returns nil, nil when the order does not exist. Proof bytes are
// not loaded; use the artifact paths.
func (r *fileOrderRepository) FindByID(id string) (*entity.OrderContext, error) {
	reader, err := r.storage.Get(r.metadataPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer reader.Close()

	var order entity.OrderContext
	if err := json.NewDecoder(reader).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *fileOrderRepository) Delete(id string) error {
	if err := r.storage.Delete(path.Join("orders", id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *fileOrderRepository) metadataPath(id string) string {
	return path.Join("orders", id, "order.json")
}

func (r *fileOrderRepository) proofPath(id string, side entity.Side) string {
	return path.Join("orders", id, string(side)+".png")
}
