package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestHolidayRepository_Add_Idempotent(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewHolidayRepository(mock)
	date := day(2024, time.January, 6)

	mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO custom_holidays (date)
        VALUES ($1)
        ON CONFLICT (date) DO NOTHING
    `)).
		WithArgs(date).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	if err := repo.Add(context.Background(), date); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHolidayRepository_FindByRange(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewHolidayRepository(mock)
	start := day(2024, time.January, 16)
	end := day(2024, time.February, 15)

	rows := pgxmock.NewRows([]string{"date"}).
		AddRow(day(2024, time.January, 17)).
		AddRow(day(2024, time.February, 1))

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT date
          FROM custom_holidays
         WHERE date BETWEEN $1 AND $2
         ORDER BY date
    `)).
		WithArgs(start, end).
		WillReturnRows(rows)

	dates, err := repo.FindByRange(context.Background(), start, end)
	if err != nil {
		t.Fatalf("FindByRange returned error: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(dates))
	}
	if !dates[0].Equal(day(2024, time.January, 17)) {
		t.Fatalf("unexpected date %v", dates[0])
	}
}
