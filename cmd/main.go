package main

import (
	"context"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/config"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/logger"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/routes"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/utils"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Environment)
	defer log.Sync()

	ctx := context.Background()

	var store storage.Storage
	switch cfg.StorageDriver {
	case "memory":
		mem := storage.NewMemStorage()
		if cfg.SeedDemoData {
			if err := storage.SeedDemoData(ctx, mem); err != nil {
				log.Fatalw("failed to seed demo data", "error", err)
			}
		}
		store = mem
	default:
		db, err := cfg.OpenDB()
		if err != nil {
			log.Fatalw("failed to open database", "driver", cfg.StorageDriver, "error", err)
		}
		if err := storage.AutoMigrate(db); err != nil {
			log.Fatalw("failed to migrate schema", "error", err)
		}
		store = storage.NewGormStorage(db)
	}

	var images *utils.ImageStore
	if cfg.S3Bucket != "" {
		var err error
		images, err = utils.NewImageStore(ctx, cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Fatalw("failed to init image uploads", "error", err)
		}
	}

	r := routes.SetupRouter(routes.Deps{
		Store:  store,
		Hub:    services.NewRealtimeHub(),
		Images: images,
		Log:    log,
	})

	log.Infow("starting server", "port", cfg.Port, "storage", cfg.StorageDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
