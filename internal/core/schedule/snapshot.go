package schedule

import (
	"time"

	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/shift"
)

// Snapshot は 1 月度分のスケジュールの明示的なスナップショットです。
// 保存・ロスター変更・祝日変更のたびに作り直される前提で、内部状態を持ちません。
type Snapshot struct {
	Period    period.Period
	Dates     []time.Time
	Employees []*roster.Employee
	Holidays  period.HolidaySet
	// cells は日付→スタッフ ID→保存値です。既定の休み補完を含みます。
	cells map[time.Time]map[string]string
}

// Value はセルの保存値を返します。レコードがなければ空文字です。
func (s *Snapshot) Value(date time.Time, employeeID string) string {
	if row, ok := s.cells[period.DateOf(date)]; ok {
		return row[employeeID]
	}
	return ""
}

// Decoded はセルを復号して返します。毎回導出され、キャッシュされません。
func (s *Snapshot) Decoded(date time.Time, employeeID string) shift.Decoded {
	return shift.Decode(s.Value(date, employeeID))
}

// Class は日付の区分を返します。
func (s *Snapshot) Class(date time.Time) period.DayClass {
	return period.Classify(date, s.Holidays)
}

// DecodedRow は同じ日付の有効スタッフ全員分の復号結果を表示順で返します。
func (s *Snapshot) DecodedRow(date time.Time) []shift.Decoded {
	row := make([]shift.Decoded, 0, len(s.Employees))
	for _, emp := range s.Employees {
		row = append(row, s.Decoded(date, emp.ID))
	}
	return row
}

// NewSnapshot はレコード・カスタム祝日・スタッフ一覧からスナップショットを構築します。
func NewSnapshot(p period.Period, records []Record, holidays []time.Time, employees []*roster.Employee) *Snapshot {
	return buildSnapshot(p, records, holidays, employees)
}

func buildSnapshot(p period.Period, records []Record, holidays []time.Time, employees []*roster.Employee) *Snapshot {
	snap := &Snapshot{
		Period:    p,
		Dates:     p.Dates(),
		Employees: employees,
		Holidays:  period.NewHolidaySet(holidays...),
		cells:     make(map[time.Time]map[string]string),
	}

	for _, record := range records {
		date := period.DateOf(record.Date)
		if !p.Contains(date) {
			continue
		}
		row, ok := snap.cells[date]
		if !ok {
			row = make(map[string]string)
			snap.cells[date] = row
		}
		row[record.EmployeeID] = record.Value
	}

	// 土日祝はレコードがない限り既定で休みになります。平日は空のままです。
	for _, date := range snap.Dates {
		if !period.IsRestDay(snap.Class(date)) {
			continue
		}
		row, ok := snap.cells[date]
		if !ok {
			row = make(map[string]string)
			snap.cells[date] = row
		}
		for _, emp := range employees {
			if _, exists := row[emp.ID]; !exists {
				row[emp.ID] = shift.LabelDayOff
			}
		}
	}

	return snap
}
