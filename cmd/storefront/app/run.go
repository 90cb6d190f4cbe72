package app

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"github.com/LeonardBuda/forever-zama/configs"
	httpadapter "github.com/LeonardBuda/forever-zama/internal/adapter/http"
	"github.com/LeonardBuda/forever-zama/internal/adapter/notify"
	"github.com/LeonardBuda/forever-zama/internal/adapter/queue"
	"github.com/LeonardBuda/forever-zama/internal/adapter/repo"
	"github.com/LeonardBuda/forever-zama/internal/adapter/seq"
	"github.com/LeonardBuda/forever-zama/internal/catalog"
	"github.com/LeonardBuda/forever-zama/internal/logging"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	log := logging.Init(cfg.App.Name, cfg.App.LogFile)

	// catalog: static data, indexed once; duplicate-price conflicts fail startup
	cat, err := catalog.New()
	if err != nil {
		return nil, nil, err
	}

	// firestore
	var clientOpts []option.ClientOption
	switch {
	case cfg.Firestore.CredentialsJSON != "":
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(cfg.Firestore.CredentialsJSON)))
	case cfg.Firestore.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	fs, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, clientOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("firestore client: %w", err)
	}
	log.Info("firestore connected", "project", cfg.Firestore.ProjectID)

	cartRepo := repo.NewFirestoreCartRepo(fs)
	leadRepo := repo.NewFirestoreLeadRepo(fs)

	// The store can hold leftover lines from a previous process; start fresh
	// like the legacy deployment did.
	if err := cartRepo.Clear(ctx); err != nil {
		log.Warn("startup cart clear failed", "error", err.Error())
	}

	// order sequencer: redis when configured, in-process otherwise
	var sequencer usecase.Sequencer
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			_ = fs.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		sequencer = seq.NewRedisSequencer(rdb, cfg.Redis.SequenceKey)
		log.Info("order sequencer: redis", "key", cfg.Redis.SequenceKey)
	} else {
		sequencer = seq.NewMemorySequencer()
		log.Warn("order sequencer: in-memory; numbering resets on restart")
	}

	// notifier: direct telegram, or through the durable queue when rabbit is up
	telegram := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.Timeout)
	var notifier usecase.Notifier = telegram
	var amqpConn *amqp.Connection
	if cfg.Rabbit.URL != "" {
		amqpConn, err = amqp.Dial(cfg.Rabbit.URL)
		if err != nil {
			cleanupClients(fs, rdb, nil)
			return nil, nil, fmt.Errorf("rabbit dial: %w", err)
		}
		ch, err := amqpConn.Channel()
		if err != nil {
			cleanupClients(fs, rdb, amqpConn)
			return nil, nil, fmt.Errorf("rabbit channel: %w", err)
		}
		producer, err := queue.NewNotifyProducer(ch)
		if err != nil {
			cleanupClients(fs, rdb, amqpConn)
			return nil, nil, err
		}
		if err := startNotifyConsumer(amqpConn, telegram); err != nil {
			cleanupClients(fs, rdb, amqpConn)
			return nil, nil, err
		}
		notifier = producer
		log.Info("notifications routed through rabbitmq")
	}

	// usecases + handlers + router
	cartUC := usecase.NewCart(cat, cartRepo)
	checkoutUC := usecase.NewCheckout(cartRepo, sequencer, notifier, usecase.NewStubPayments())
	leadsUC := usecase.NewLeads(leadRepo, notifier)

	router := httpadapter.NewRouter(
		httpadapter.NewCartHandler(cartUC),
		httpadapter.NewCheckoutHandler(checkoutUC, cartUC),
		httpadapter.NewCatalogHandler(cat),
		httpadapter.NewLeadHandler(leadsUC),
	)

	cleanup := func() { cleanupClients(fs, rdb, amqpConn) }
	return &App{Router: router}, cleanup, nil
}

// startNotifyConsumer drains queued notifications to Telegram on its own
// channel, so consume traffic does not share the publisher channel.
func startNotifyConsumer(conn *amqp.Connection, telegram *notify.TelegramNotifier) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbit consumer channel: %w", err)
	}
	h := queue.NewSendNotificationHandler(telegram)
	router := queue.NewRouter(ch, queue.WithPrefetch(10))
	router.Register(queue.NotificationsQueue, queue.JSONHandler[queue.NotificationMsg]{HandleFunc: h.HandleSend})
	return router.Start()
}

func cleanupClients(fs *firestore.Client, rdb *redis.Client, conn *amqp.Connection) {
	if fs != nil {
		_ = fs.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if conn != nil {
		_ = conn.Close()
	}
}
