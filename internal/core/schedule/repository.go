package schedule

import (
	"context"
	"time"
)

// Record は 1 日・1 スタッフ分の保存済みシフトです。
// レコードの欠落は「未入力」を意味し、明示的な「休み」とは区別されます。
type Record struct {
	Date       time.Time
	EmployeeID string
	Value      string
}

// ShiftRepository はシフト永続化の抽象です。
type ShiftRepository interface {
	FindByRange(ctx context.Context, start, end time.Time) ([]Record, error)
	// Save は同一キーの既存レコードを置き換えます。値が取り消しマーカーの場合は削除のみ行います。
	Save(ctx context.Context, date time.Time, employeeID, value string) error
	Delete(ctx context.Context, date time.Time, employeeID string) error
}

// HolidayRepository はカスタム祝日永続化の抽象です。
type HolidayRepository interface {
	FindByRange(ctx context.Context, start, end time.Time) ([]time.Time, error)
	Add(ctx context.Context, date time.Time) error
	Remove(ctx context.Context, date time.Time) error
}

// QuotaRepository は月間労働日数の永続化の抽象です。月度ごとに高々 1 件で、保存は置き換えです。
type QuotaRepository interface {
	Find(ctx context.Context, year, month int) (int, bool, error)
	Save(ctx context.Context, year, month, days int) error
}
