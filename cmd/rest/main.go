package main

import (
	"context"
	"log"

	"homedock-be/internal/bootstrap"
	"homedock-be/internal/config"
	"homedock-be/internal/server"
	"homedock-be/internal/tracer"
	"homedock-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Seed baseline data (admin user, config singleton, starter catalog)
	if err := container.SeedService.Run(context.Background()); err != nil {
		log.Panicf("Seeding failed: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
