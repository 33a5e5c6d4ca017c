// order archiver: consumes order events and writes them to file storage
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hunterthief/Weave-Wonder-sub000/config"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/database"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/kafka"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	repo := database.NewOrderRepository(storage.NewFileStorage(cfg.Storage.BasePath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = kafka.ConsumeOrders(ctx, cfg.Kafka.BrokerList(), cfg.Kafka.Topic, cfg.Kafka.GroupID,
		func(_ context.Context, event entity.OrderEvent) error {
			logrus.WithField("order_id", event.OrderID).Info("Archiving order event")
			return repo.SaveEvent(event)
		},
	)
	if err != nil {
		logrus.Fatalf("Order consumer stopped: %v", err)
	}
}
