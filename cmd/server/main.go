package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/farmlink-ke/farm_market/internal/config"
	"github.com/farmlink-ke/farm_market/internal/es"
	"github.com/farmlink-ke/farm_market/internal/handlers"
	"github.com/farmlink-ke/farm_market/internal/logging"
	loggingmw "github.com/farmlink-ke/farm_market/internal/middleware/logging"
	"github.com/farmlink-ke/farm_market/internal/mykafka"
	"github.com/farmlink-ke/farm_market/internal/repo"
	httpserver "github.com/farmlink-ke/farm_market/internal/transport/http"
)

const productIndex = "product"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		brokers := []string{configuration.KAFKA_ADDRESS}
		topics := []string{"user_events", "order_events", "product_events"}
		prod, err = mykafka.NewProducer(brokers, topics)
		if err != nil {
			log.Fatal(err)
		}
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	store := &repo.GormRepo{DB: db}
	deps := httpserver.Deps{
		UserHandler:    &handlers.UserHandler{Repo: store, Producer: prod},
		FarmerHandler:  &handlers.FarmerHandler{Repo: store},
		ProductHandler: &handlers.ProductHandler{Repo: store, Producer: prod, ES: esClient, Index: productIndex},
		OrderHandler:   &handlers.OrderHandler{Repo: store, Producer: prod},
		PaymentHandler: &handlers.PaymentHandler{Repo: store, Producer: prod},
		ReviewHandler:  &handlers.ReviewHandler{Repo: store},
		ChatHandler:    &handlers.ChatHandler{Repo: store, Producer: prod},
		SearchHandler:  &handlers.SearchHandler{ES: esClient, Index: productIndex},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
