package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/shift"
)

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

// Service はスケジュールに関するユースケースをまとめます。
type Service struct {
	shifts   ShiftRepository
	holidays HolidayRepository
	quotas   QuotaRepository
	rosters  roster.Repository
	tx       TransactionManager
}

// UseCase はスケジュールユースケースの公開インターフェースです。
type UseCase interface {
	Load(ctx context.Context, p period.Period) (*Snapshot, error)
	SaveShift(ctx context.Context, p period.Period, date time.Time, employeeID, value string) error
	BulkSaveShift(ctx context.Context, p period.Period, dates []time.Time, employeeID, value string) error
	AddHoliday(ctx context.Context, p period.Period, date time.Time) error
	RemoveHoliday(ctx context.Context, p period.Period, date time.Time) error
	Quota(ctx context.Context, p period.Period) (int, bool, error)
	SaveQuota(ctx context.Context, p period.Period, days int) error
}

// NewService は Service を生成します。
func NewService(shifts ShiftRepository, holidays HolidayRepository, quotas QuotaRepository, rosters roster.Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{shifts: shifts, holidays: holidays, quotas: quotas, rosters: rosters, tx: tx}
}

// Load は月度のスナップショットを構築します。
// 有効スタッフの一覧・期間内のレコード・カスタム祝日を一度に読み、
// 土日祝の既定休みを補完した形で返します。
func (s *Service) Load(ctx context.Context, p period.Period) (*Snapshot, error) {
	start, end := p.Bounds()

	var snap *Snapshot
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		records, err := s.shifts.FindByRange(txCtx, start, end)
		if err != nil {
			return err
		}

		holidays, err := s.holidays.FindByRange(txCtx, start, end)
		if err != nil {
			return err
		}

		employees, err := s.rosters.List(txCtx, true)
		if err != nil {
			return err
		}

		snap = buildSnapshot(p, records, holidays, employees)
		return nil
	}); err != nil {
		return nil, err
	}

	return snap, nil
}

// SaveShift は 1 セル分のシフトを保存します。取り消しマーカーは削除のみ行います。
func (s *Service) SaveShift(ctx context.Context, p period.Period, date time.Time, employeeID, value string) error {
	if !p.Contains(date) {
		return fmt.Errorf("%w: %s", ErrDateOutOfPeriod, period.FormatDateJP(date))
	}
	if _, err := s.rosters.FindByID(ctx, employeeID); err != nil {
		return err
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.shifts.Save(txCtx, period.DateOf(date), employeeID, normalizeValue(value))
	})
}

// BulkSaveShift は同一シフトを複数日付へ一括保存します。
// 全日付を単一トランザクションで書き込み、途中で失敗した場合は何も保存されません。
func (s *Service) BulkSaveShift(ctx context.Context, p period.Period, dates []time.Time, employeeID, value string) error {
	if len(dates) == 0 {
		return ErrNoDates
	}
	for _, date := range dates {
		if !p.Contains(date) {
			return fmt.Errorf("%w: %s", ErrDateOutOfPeriod, period.FormatDateJP(date))
		}
	}
	if _, err := s.rosters.FindByID(ctx, employeeID); err != nil {
		return err
	}

	normalized := normalizeValue(value)
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		for _, date := range dates {
			if err := s.shifts.Save(txCtx, period.DateOf(date), employeeID, normalized); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddHoliday は月度内の日付をカスタム祝日として追加します。
func (s *Service) AddHoliday(ctx context.Context, p period.Period, date time.Time) error {
	if !p.Contains(date) {
		return fmt.Errorf("%w: %s", ErrDateOutOfPeriod, period.FormatDateJP(date))
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.holidays.Add(txCtx, period.DateOf(date))
	})
}

// RemoveHoliday はカスタム祝日を削除します。
func (s *Service) RemoveHoliday(ctx context.Context, p period.Period, date time.Time) error {
	if !p.Contains(date) {
		return fmt.Errorf("%w: %s", ErrDateOutOfPeriod, period.FormatDateJP(date))
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.holidays.Remove(txCtx, period.DateOf(date))
	})
}

// Quota は月度の必要労働日数を返します。未登録なら第 2 戻り値が偽になります。
func (s *Service) Quota(ctx context.Context, p period.Period) (int, bool, error) {
	return s.quotas.Find(ctx, p.Year, p.Month)
}

// SaveQuota は必要労働日数を保存します。既存の値は置き換えられます。
func (s *Service) SaveQuota(ctx context.Context, p period.Period, days int) error {
	if days < 0 || days > 31 {
		return fmt.Errorf("%w: %d", ErrInvalidQuota, days)
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.quotas.Save(txCtx, p.Year, p.Month, days)
	})
}

// normalizeValue は未入力系の保存値を取り消しマーカーへ寄せます。
func normalizeValue(value string) string {
	if value == "" {
		return shift.ClearMarker
	}
	return value
}
