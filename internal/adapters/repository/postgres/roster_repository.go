package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	pgdb "github.com/ogurasousui/kagokita-shift/internal/platform/db/postgres"
)

const uniqueViolationCode = "23505"

// RosterRepository は PostgreSQL を利用したスタッフ永続化の実装です。
// display_order の一意制約は遅延制約なので、並べ替えはトランザクション内で順に更新できます。
type RosterRepository struct {
	pool pgdb.Queryer
}

// NewRosterRepository は RosterRepository を生成します。
func NewRosterRepository(pool pgdb.Queryer) *RosterRepository {
	return &RosterRepository{pool: pool}
}

// Create はスタッフを新規作成します。
func (r *RosterRepository) Create(ctx context.Context, e *roster.Employee) (*roster.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (id, name, display_order, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, display_order, is_active, created_at, updated_at
    `,
		e.ID,
		e.Name,
		e.DisplayOrder,
		e.IsActive,
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateRosterPgError(err)
	}
	return created, nil
}

// Update はスタッフの名前と有効フラグを更新します。
func (r *RosterRepository) Update(ctx context.Context, e *roster.Employee) (*roster.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET name = $1,
               is_active = $2,
               updated_at = $3
         WHERE id = $4
        RETURNING id, name, display_order, is_active, created_at, updated_at
    `,
		e.Name,
		e.IsActive,
		e.UpdatedAt,
		e.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateRosterPgError(err)
	}
	return updated, nil
}

// UpdateOrder は表示順のみを更新します。
func (r *RosterRepository) UpdateOrder(ctx context.Context, id string, displayOrder int) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `UPDATE employees SET display_order = $1 WHERE id = $2`, displayOrder, id)
	if err != nil {
		return translateRosterPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrEmployeeNotFound
	}
	return nil
}

// Delete はスタッフを削除します。
func (r *RosterRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translateRosterPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrEmployeeNotFound
	}
	return nil
}

// FindByID は ID でスタッフを取得します。
func (r *RosterRepository) FindByID(ctx context.Context, id string) (*roster.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, display_order, is_active, created_at, updated_at
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateRosterPgError(err)
	}
	return found, nil
}

// List はスタッフを表示順で取得します。
func (r *RosterRepository) List(ctx context.Context, onlyActive bool) ([]*roster.Employee, error) {
	query := `
        SELECT id, name, display_order, is_active, created_at, updated_at
          FROM employees
    `
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order`

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query)
	if err != nil {
		return nil, translateRosterPgError(err)
	}
	defer rows.Close()

	var employees []*roster.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateRosterPgError(err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, translateRosterPgError(err)
	}

	return employees, nil
}

// MaxDisplayOrder は現在の表示順の最大値を返します。スタッフがいなければ 0 です。
func (r *RosterRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var max int
	if err := exec.QueryRow(ctx, `SELECT COALESCE(MAX(display_order), 0) FROM employees`).Scan(&max); err != nil {
		return 0, fmt.Errorf("employees: max display order: %w", err)
	}
	return max, nil
}

func scanEmployee(row pgx.Row) (*roster.Employee, error) {
	var (
		id           string
		name         string
		displayOrder int
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)

	if err := row.Scan(&id, &name, &displayOrder, &isActive, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, roster.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &roster.Employee{
		ID:           id,
		Name:         name,
		DisplayOrder: displayOrder,
		IsActive:     isActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func translateRosterPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return roster.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", roster.ErrInvalidOrdering, pgErr.ConstraintName)
	}

	return err
}
