package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/auction-order-service/docs"
	"github.com/SergeyBogomolovv/auction-order-service/internal/app"
	"github.com/SergeyBogomolovv/auction-order-service/internal/config"
	"github.com/SergeyBogomolovv/auction-order-service/internal/events"
	"github.com/SergeyBogomolovv/auction-order-service/internal/handler"
	"github.com/SergeyBogomolovv/auction-order-service/internal/payment"
	"github.com/SergeyBogomolovv/auction-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/auction-order-service/internal/repo"
	"github.com/SergeyBogomolovv/auction-order-service/internal/service"
	"github.com/SergeyBogomolovv/auction-order-service/internal/telemetry"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Auction Order Service API
// @version         1.0
// @description     Исполнение заказов после аукциона: оплата, доставка, отмена и оценки
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	shutdownTracing, err := telemetry.InitTracerProvider(context.Background(), conf.Tracing)
	panicIfErr("failed to init tracing", err)

	application := app.New(logger, conf)

	var (
		txManager trm.Manager
		orders    service.OrderRepo
		ratings   service.RatingRepo
	)
	switch conf.Storage {
	case config.StorageMemory:
		store := repo.NewMemoryStore()
		txManager, orders, ratings = store, store, store
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		application.SetClosers(db)
		logger.Info("postgres connected")

		pg := repo.NewPostgresRepo(db)
		txManager, orders, ratings = trm.NewManager(db), pg, pg
	}

	var gateway service.PaymentGateway
	if conf.Payment.URL == config.PaymentStub {
		gateway = payment.NewStub()
		logger.Warn("using stub payment gateway")
	} else {
		gateway = payment.NewHTTPGateway(conf.Payment.URL, &http.Client{Timeout: conf.Payment.Timeout})
	}

	var publisher service.EventPublisher = events.NewNoop(logger)
	if conf.Kafka.Enabled {
		producer := events.NewProducer(conf.Kafka.Brokers, conf.Kafka.OrderEventsTopic, conf.Kafka.BatchTimeout)
		application.SetClosers(producer)
		publisher = producer
	}

	viewCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	service.RegisterMetrics()
	handler.RegisterMetrics()

	orderService := service.NewOrderService(logger, txManager, orders, ratings, viewCache, gateway, publisher)

	application.SetHTTPHandlers(handler.NewHTTPHandler(logger, orderService, conf.Auth.ActorHeader))
	if conf.Kafka.Enabled {
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	application.SetStarters(janitor{viewCache})
	// трейсы выгружаются последними
	application.SetClosers(closerFunc(func() error { return shutdownTracing(context.Background()) }))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type janitor struct {
	cache *cache.LRUCache
}

func (j janitor) Start(ctx context.Context) error {
	j.cache.StartJanitor(ctx)
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
