package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"dessertbook/internal/config"
	"dessertbook/internal/database"
	"dessertbook/internal/pkg/jwt"
	"dessertbook/internal/server"
	"dessertbook/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	images, err := newImageStore(ctx, cfg)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, rate limiting fails open: %v", err)
		}
	}

	router, err := server.NewRouter(server.Deps{
		Config: cfg,
		DB:     db,
		JWT:    jwt.New(cfg.JWTSecret, cfg.JWTTTL),
		Images: images,
		Redis:  rdb,
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	srv := server.New(":"+cfg.Port, router, cfg.ShutdownTimeout)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newImageStore(ctx context.Context, cfg *config.Config) (storage.ImageStore, error) {
	if cfg.ImageStore == "s3" {
		log.Printf("image store: s3 bucket=%s", cfg.S3Bucket)
		return storage.NewS3StoreFromEnv(ctx, cfg.S3Bucket, cfg.AWSRegion)
	}
	log.Printf("image store: local dir=%s", cfg.ImageDir)
	return storage.NewLocalStore(cfg.ImageDir, storage.DefaultURLPrefix)
}
