package roster

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const maxNameLength = 50

// Service はスタッフ管理のユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase はスタッフ管理ユースケースの公開インターフェースです。
type UseCase interface {
	AddEmployee(ctx context.Context, name string) (*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	ReorderEmployees(ctx context.Context, changes []OrderChange) error
	DeleteEmployee(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*Employee, error)
	ListAll(ctx context.Context) ([]*Employee, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// UpdateEmployeeInput はスタッフ更新時の入力です。nil のフィールドは変更されません。
type UpdateEmployeeInput struct {
	ID       string
	Name     *string
	IsActive *bool
}

// OrderChange は表示順変更の 1 件です。
type OrderChange struct {
	ID       string
	NewOrder int
}

// AddEmployee は新しいスタッフを追加します。表示順は現在の最大値の次になります。
func (s *Service) AddEmployee(ctx context.Context, name string) (*Employee, error) {
	normalized, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		maxOrder, err := s.repo.MaxDisplayOrder(txCtx)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		emp := &Employee{
			ID:           uuid.NewString(),
			Name:         normalized,
			DisplayOrder: maxOrder + 1,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		result, err := s.repo.Create(txCtx, emp)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateEmployee はスタッフの名前・有効フラグを更新します。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name, err := normalizeName(*in.Name)
			if err != nil {
				return err
			}
			existing.Name = name
		}

		if in.IsActive != nil {
			existing.IsActive = *in.IsActive
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// ReorderEmployees は表示順を入れ替えます。
// 変更適用後の全体が 1..N の密な並びにならない入力は ErrInvalidOrdering で拒否します。
func (s *Service) ReorderEmployees(ctx context.Context, changes []OrderChange) error {
	if len(changes) == 0 {
		return nil
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		all, err := s.repo.List(txCtx, false)
		if err != nil {
			return err
		}

		orders := make(map[string]int, len(all))
		for _, emp := range all {
			orders[emp.ID] = emp.DisplayOrder
		}

		for _, change := range changes {
			if _, ok := orders[change.ID]; !ok {
				return fmt.Errorf("%w: %s", ErrEmployeeNotFound, change.ID)
			}
			orders[change.ID] = change.NewOrder
		}

		if err := validateDense(orders); err != nil {
			return err
		}

		for _, change := range changes {
			if err := s.repo.UpdateOrder(txCtx, change.ID, change.NewOrder); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteEmployee はスタッフを削除し、残りの表示順を元の相対順のまま 1..N に振り直します。
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}

		remaining, err := s.repo.List(txCtx, false)
		if err != nil {
			return err
		}

		sort.SliceStable(remaining, func(i, j int) bool {
			return remaining[i].DisplayOrder < remaining[j].DisplayOrder
		})

		for i, emp := range remaining {
			if emp.DisplayOrder == i+1 {
				continue
			}
			if err := s.repo.UpdateOrder(txCtx, emp.ID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListActive は有効なスタッフを表示順で返します。
func (s *Service) ListActive(ctx context.Context) ([]*Employee, error) {
	return s.list(ctx, true)
}

// ListAll は全スタッフを表示順で返します（管理用）。
func (s *Service) ListAll(ctx context.Context) ([]*Employee, error) {
	return s.list(ctx, false)
}

func (s *Service) list(ctx context.Context, onlyActive bool) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx, onlyActive)
		if err != nil {
			return err
		}
		employees = result
		return nil
	}); err != nil {
		return nil, err
	}
	return employees, nil
}

func normalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len([]rune(trimmed)) > maxNameLength {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

func validateDense(orders map[string]int) error {
	seen := make(map[int]bool, len(orders))
	for _, order := range orders {
		if order < 1 || order > len(orders) || seen[order] {
			return ErrInvalidOrdering
		}
		seen[order] = true
	}
	return nil
}
