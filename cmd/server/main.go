package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	dashboard "github.com/Keerthana-tech-26/business-automation-dashboard"
	"github.com/Keerthana-tech-26/business-automation-dashboard/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SQLiteDBPath), 0o755); err != nil {
		log.Fatalf("create db directory: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLiteDBPath), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	if err := dashboard.NewMigrationHandler(db)(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := dashboard.NewSeedHandler(db)(); err != nil {
		log.Fatalf("seed: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	dashboard.Register(r, db)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("dashboard listening on %s", srv.Addr)
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal(err)
	}
}
