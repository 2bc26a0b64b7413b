package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	pgdb "github.com/ogurasousui/kagokita-shift/internal/platform/db/postgres"
)

// QuotaRepository は PostgreSQL を利用した月間労働日数永続化の実装です。
type QuotaRepository struct {
	pool pgdb.Queryer
}

// NewQuotaRepository は QuotaRepository を生成します。
func NewQuotaRepository(pool pgdb.Queryer) *QuotaRepository {
	return &QuotaRepository{pool: pool}
}

// Find は月度の労働日数を取得します。未登録の場合は第 2 戻り値が偽になります。
func (r *QuotaRepository) Find(ctx context.Context, year, month int) (int, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var days int
	err := exec.QueryRow(ctx, `
        SELECT days
          FROM work_days
         WHERE year = $1 AND month = $2
         LIMIT 1
    `, year, month).Scan(&days)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("work_days: query: %w", err)
	}
	return days, true, nil
}

// Save は月度の労働日数を保存します。既存の値は置き換えられます。
func (r *QuotaRepository) Save(ctx context.Context, year, month, days int) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `
        INSERT INTO work_days (year, month, days)
        VALUES ($1, $2, $3)
        ON CONFLICT (year, month) DO UPDATE SET days = EXCLUDED.days
    `, year, month, days); err != nil {
		return fmt.Errorf("work_days: upsert: %w", err)
	}
	return nil
}
