//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/kagokita-shift/internal/adapters/repository/postgres"
	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
	"github.com/ogurasousui/kagokita-shift/internal/platform/config"
	pg "github.com/ogurasousui/kagokita-shift/internal/platform/db/postgres"
)

const migrationsDir = "assets/migrations"

func TestScheduleRoundTripIntegration(t *testing.T) {
	t.Parallel()

	cfgPath := configPathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	tx := pg.NewTransactionManager(pool)
	rosterRepo := repo.NewRosterRepository(pool)
	rosterSvc := roster.NewService(rosterRepo, stubClock{now: time.Now().UTC()}, tx)
	scheduleSvc := schedule.NewService(
		repo.NewShiftRepository(pool),
		repo.NewHolidayRepository(pool),
		repo.NewQuotaRepository(pool),
		rosterRepo,
		tx,
	)

	created, err := rosterSvc.AddEmployee(ctx, "佐藤")
	if err != nil {
		t.Fatalf("AddEmployee error: %v", err)
	}
	if created.DisplayOrder != 1 {
		t.Fatalf("expected display order 1, got %d", created.DisplayOrder)
	}

	p, err := period.New(2024, 1)
	if err != nil {
		t.Fatalf("failed to build period: %v", err)
	}
	date := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)

	if err := scheduleSvc.SaveShift(ctx, p, date, created.ID, "ヘルプ,09:00@天文館店"); err != nil {
		t.Fatalf("SaveShift error: %v", err)
	}

	snap, err := scheduleSvc.Load(ctx, p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := snap.Value(date, created.ID); got != "ヘルプ,09:00@天文館店" {
		t.Fatalf("unexpected stored value %q", got)
	}
	if counts := schedule.WorkedDayCounts(snap); counts[created.ID] != 1 {
		t.Fatalf("expected 1 worked day, got %d", counts[created.ID])
	}

	// 取り消しマーカーはレコードを消し、再ロードで未入力へ戻る。
	if err := scheduleSvc.SaveShift(ctx, p, date, created.ID, "-"); err != nil {
		t.Fatalf("SaveShift clear error: %v", err)
	}
	snap, err = scheduleSvc.Load(ctx, p)
	if err != nil {
		t.Fatalf("Load after clear error: %v", err)
	}
	if got := snap.Value(date, created.ID); got != "" {
		t.Fatalf("expected empty value after clear, got %q", got)
	}

	if err := rosterSvc.DeleteEmployee(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEmployee error: %v", err)
	}
	if _, err := rosterRepo.FindByID(ctx, created.ID); !errors.Is(err, roster.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
