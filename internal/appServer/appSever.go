// launching the server, design sessions, kafka, order sink
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/config"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/database"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/compositor"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/kafka"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/mailer"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/notify"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/processor"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/storage"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/service"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/transport"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	sessionTTL      = 2 * time.Hour
	cleanupInterval = 10 * time.Minute
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// orderSink picks the email API or, when delivery is disabled, a sink that
// only logs. The latter is for local development.
func orderSink(cfg config.EmailConfig) mailer.Mailer {
	if !cfg.Enabled {
		logrus.Warn("Email delivery disabled, orders will only be logged")
		return logOnlyMailer{}
	}
	return mailer.New(mailer.Config{
		Endpoint:   cfg.Endpoint,
		ServiceID:  cfg.ServiceID,
		TemplateID: cfg.TemplateID,
		PublicKey:  cfg.PublicKey,
		Merchant:   cfg.Merchant,
		Timeout:    cfg.Timeout,
	})
}

type logOnlyMailer struct{}

func (logOnlyMailer) Send(_ context.Context, order *entity.OrderContext) error {
	logrus.WithFields(logrus.Fields{"order_id": order.ID, "total": order.Quote.Total}).Info("Order not emailed (delivery disabled)")
	return nil
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	bounds := cfg.Placement.Bounds
	if !bounds.Valid() {
		logrus.Warnf("Invalid print area %+v, using defaults", bounds)
		bounds = entity.DefaultBounds
	}

	fileStorage := storage.NewFileStorage(cfg.Storage.BasePath)
	decoder := processor.NewImageDecoder(fileStorage)
	kafkaProducer := kafka.NewProducer(cfg.Kafka.BrokerList(), cfg.Kafka.Topic)
	defer kafkaProducer.Close()

	pricingService := service.NewPricingService(cfg.Catalog, cfg.Shipping)
	designService := service.NewDesignService(database.NewSessionRepository(), decoder,
		compositor.New(bounds), pricingService, bounds, cfg.Placement.MinSize)
	orderService := service.NewOrderService(designService, pricingService,
		database.NewOrderRepository(fileStorage), orderSink(cfg.Email), kafkaProducer, notify.LogNotifier{})

	handler := transport.NewHandler(pricingService, designService, orderService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.NewSessionCleanupWorker(designService, cleanupInterval, sessionTTL).Start(ctx)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handler, cfg.Email.Timeout+5*time.Second)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
