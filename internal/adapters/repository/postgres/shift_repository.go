package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
	"github.com/ogurasousui/kagokita-shift/internal/core/shift"
	pgdb "github.com/ogurasousui/kagokita-shift/internal/platform/db/postgres"
)

// ShiftRepository は PostgreSQL を利用したシフト永続化の実装です。
type ShiftRepository struct {
	pool pgdb.Queryer
}

// NewShiftRepository は ShiftRepository を生成します。
func NewShiftRepository(pool pgdb.Queryer) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

// FindByRange は期間内のシフトレコードを取得します。
func (r *ShiftRepository) FindByRange(ctx context.Context, start, end time.Time) ([]schedule.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT date, employee_id, value
          FROM shifts
         WHERE date BETWEEN $1 AND $2
         ORDER BY date, employee_id
    `, start, end)
	if err != nil {
		return nil, fmt.Errorf("shifts: query range: %w", err)
	}
	defer rows.Close()

	var records []schedule.Record
	for rows.Next() {
		var (
			date       time.Time
			employeeID string
			value      string
		)
		if err := rows.Scan(&date, &employeeID, &value); err != nil {
			return nil, fmt.Errorf("shifts: scan: %w", err)
		}
		records = append(records, schedule.Record{
			Date:       normalizeDate(date),
			EmployeeID: employeeID,
			Value:      value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("shifts: rows: %w", err)
	}

	return records, nil
}

// Save は同一キーの既存レコードを削除してから挿入します。
// 再保存はマージではなく置き換えです。取り消しマーカーの場合は削除のみ行います。
func (r *ShiftRepository) Save(ctx context.Context, date time.Time, employeeID, value string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	if _, err := exec.Exec(ctx, `DELETE FROM shifts WHERE date = $1 AND employee_id = $2`, normalizeDate(date), employeeID); err != nil {
		return fmt.Errorf("shifts: delete before save: %w", err)
	}

	if value == shift.ClearMarker {
		return nil
	}

	if _, err := exec.Exec(ctx, `
        INSERT INTO shifts (date, employee_id, value)
        VALUES ($1, $2, $3)
    `, normalizeDate(date), employeeID, value); err != nil {
		return fmt.Errorf("shifts: insert: %w", err)
	}

	return nil
}

// Delete はレコードを削除します。存在しないキーに対しても成功します。
func (r *ShiftRepository) Delete(ctx context.Context, date time.Time, employeeID string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM shifts WHERE date = $1 AND employee_id = $2`, normalizeDate(date), employeeID); err != nil {
		return fmt.Errorf("shifts: delete: %w", err)
	}
	return nil
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
