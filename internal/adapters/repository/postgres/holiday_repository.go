package postgres

import (
	"context"
	"fmt"
	"time"

	pgdb "github.com/ogurasousui/kagokita-shift/internal/platform/db/postgres"
)

// HolidayRepository は PostgreSQL を利用したカスタム祝日永続化の実装です。
type HolidayRepository struct {
	pool pgdb.Queryer
}

// NewHolidayRepository は HolidayRepository を生成します。
func NewHolidayRepository(pool pgdb.Queryer) *HolidayRepository {
	return &HolidayRepository{pool: pool}
}

// FindByRange は期間内のカスタム祝日を取得します。
func (r *HolidayRepository) FindByRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT date
          FROM custom_holidays
         WHERE date BETWEEN $1 AND $2
         ORDER BY date
    `, start, end)
	if err != nil {
		return nil, fmt.Errorf("custom_holidays: query range: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("custom_holidays: scan: %w", err)
		}
		dates = append(dates, normalizeDate(date))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("custom_holidays: rows: %w", err)
	}

	return dates, nil
}

// Add はカスタム祝日を追加します。既に登録済みの日付は黙って受け入れます。
func (r *HolidayRepository) Add(ctx context.Context, date time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `
        INSERT INTO custom_holidays (date)
        VALUES ($1)
        ON CONFLICT (date) DO NOTHING
    `, normalizeDate(date)); err != nil {
		return fmt.Errorf("custom_holidays: insert: %w", err)
	}
	return nil
}

// Remove はカスタム祝日を削除します。
func (r *HolidayRepository) Remove(ctx context.Context, date time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM custom_holidays WHERE date = $1`, normalizeDate(date)); err != nil {
		return fmt.Errorf("custom_holidays: delete: %w", err)
	}
	return nil
}
