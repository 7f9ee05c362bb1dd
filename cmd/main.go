package main

import (
	"context"
	"os"

	"github.com/Hariom8799/nutrisnap/config"
	"github.com/Hariom8799/nutrisnap/routes"
	"github.com/Hariom8799/nutrisnap/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}

	// Photo uploads stay disabled unless a bucket is configured.
	var uploader *utils.ImageUploader
	if cfg.S3Bucket != "" {
		uploader, err = utils.NewImageUploader(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			logger.Fatalf("S3 init failed: %v", err)
		}
	} else {
		logger.Warn("S3_BUCKET not set, image uploads disabled")
	}

	r := routes.SetupRouter(cfg, db, uploader, logger)

	logger.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
