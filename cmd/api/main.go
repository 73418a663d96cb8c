package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-warung-orders.git/internal/cart"
	"github.com/ariefcatur/go-warung-orders.git/internal/catalog"
	"github.com/ariefcatur/go-warung-orders.git/internal/config"
	"github.com/ariefcatur/go-warung-orders.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-warung-orders.git/internal/kafka"
	"github.com/ariefcatur/go-warung-orders.git/internal/pesanan"
	"github.com/ariefcatur/go-warung-orders.git/internal/postgres"
	"github.com/ariefcatur/go-warung-orders.git/internal/redisx"
	"github.com/ariefcatur/go-warung-orders.git/internal/seed"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	log, _ := zap.NewProduction()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB: tanpa storage tidak ada yang bisa dilayani
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	defer db.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	prod := kafkax.NewProducer(cfg.KafkaBrokers, pesanan.TopicOrderCreated, 1024, log)
	prod.Start(ctx)

	// Seed sekali sebelum serve; gagal seed bukan alasan mati.
	loader := &seed.Loader{DB: db, Log: log}
	outcome, err := loader.Run(ctx, cfg.SeedPath)
	if err != nil {
		log.Error("seed failed", zap.String("outcome", outcome.String()), zap.Error(err))
	} else {
		log.Info("seed done", zap.String("outcome", outcome.String()))
	}

	router := httpx.NewRouter()
	(&httpx.CatalogHandler{Repo: &catalog.Repo{DB: db}, Redis: rdb, Log: log}).Register(router)
	(&httpx.CartHandler{Repo: &cart.Repo{DB: db}, Log: log}).Register(router)
	(&httpx.OrdersHandler{Repo: &pesanan.Repo{DB: db}, Producer: prod, Service: cfg.ServiceName, Log: log}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // stop intake -> flush sisa pesan
	cancel()
	prod.WaitClosed()
}
