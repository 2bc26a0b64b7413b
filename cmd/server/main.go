package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	apihttp "github.com/ogurasousui/kagokita-shift/internal/adapters/http"
	"github.com/ogurasousui/kagokita-shift/internal/adapters/http/handler"
	"github.com/ogurasousui/kagokita-shift/internal/adapters/repository/postgres"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
	"github.com/ogurasousui/kagokita-shift/internal/exporter"
	"github.com/ogurasousui/kagokita-shift/internal/platform/config"
	pg "github.com/ogurasousui/kagokita-shift/internal/platform/db/postgres"
	"github.com/ogurasousui/kagokita-shift/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	tx := pg.NewTransactionManager(dbPool)

	rosterRepo := postgres.NewRosterRepository(dbPool)
	shiftRepo := postgres.NewShiftRepository(dbPool)
	holidayRepo := postgres.NewHolidayRepository(dbPool)
	quotaRepo := postgres.NewQuotaRepository(dbPool)

	rosterSvc := roster.NewService(rosterRepo, nil, tx)
	scheduleSvc := schedule.NewService(shiftRepo, holidayRepo, quotaRepo, rosterRepo, tx)

	scheduleH := handler.NewScheduleHandler(scheduleSvc)
	rosterH := handler.NewRosterHandler(rosterSvc)
	exportH := handler.NewExportHandler(scheduleSvc, exporter.New())

	httpServer := server.New(cfg.Server.ListenAddr, cfg.Server.ReadTimeout, func(app *fiber.App) {
		apihttp.RegisterRoutes(app, scheduleH, rosterH, exportH)
	})

	log.Printf("HTTP server listening on %s", cfg.Server.ListenAddr)

	if err := httpServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
