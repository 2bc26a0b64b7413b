package period

import (
	"fmt"
	"time"
)

// 給与締めに合わせ、月度は 16 日に始まり翌月 15 日に終わります。
const startDay = 16

// Period は 16 日始まりの月度（スケジュール期間）を表します。
type Period struct {
	Year  int
	Month int
}

// New は月度を生成します。
func New(year, month int) (Period, error) {
	if year < 1 || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: year=%d month=%d", ErrInvalidPeriod, year, month)
	}
	return Period{Year: year, Month: month}, nil
}

// Of は日付が属する月度を返します。16 日のロールオーバーにより所属月度は一意です。
func Of(date time.Time) Period {
	d := DateOf(date)
	if d.Day() >= startDay {
		return Period{Year: d.Year(), Month: int(d.Month())}
	}
	prev := d.AddDate(0, -1, 0)
	return Period{Year: prev.Year(), Month: int(prev.Month())}
}

// Bounds は月度の開始日と終了日（両端を含む）を返します。
// 12 月度は翌年 1 月 15 日で終わります。
func (p Period) Bounds() (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), startDay, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}

// Dates は月度内の全日付を昇順で返します。月の長さにより 28〜31 日分になります。
func (p Period) Dates() []time.Time {
	start, end := p.Bounds()
	dates := make([]time.Time, 0, 31)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Contains は日付が月度に含まれるかどうかを返します。
func (p Period) Contains(date time.Time) bool {
	start, end := p.Bounds()
	d := DateOf(date)
	return !d.Before(start) && !d.After(end)
}

// String は「2024年01月16日～2024年02月15日」の形式で期間を返します。
func (p Period) String() string {
	start, end := p.Bounds()
	return fmt.Sprintf("%s～%s", FormatDateJP(start), FormatDateJP(end))
}

// DateOf は時刻情報を落とし、UTC の暦日に正規化します。
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDateJP は日付を「2024年01月16日」の形式にします。
func FormatDateJP(t time.Time) string {
	return fmt.Sprintf("%04d年%02d月%02d日", t.Year(), int(t.Month()), t.Day())
}
