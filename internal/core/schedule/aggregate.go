package schedule

import (
	"github.com/ogurasousui/kagokita-shift/internal/core/shift"
)

// CountWorkedDays は保存値の列から勤務日数を数えます。
// 休みと未入力（空・取り消し・欠落）は 0、それ以外は割り当て数によらず 1 日です。
func CountWorkedDays(values []string) int {
	count := 0
	for _, value := range values {
		if shift.Decode(value).Worked() {
			count++
		}
	}
	return count
}

// WorkedDayCounts はスナップショット全体の勤務日数をスタッフごとに集計します。
// 有効スタッフは全員含まれ、レコードのないスタッフは 0 になります。
// 無効スタッフのセルが残っていても集計には含まれません。
func WorkedDayCounts(snap *Snapshot) map[string]int {
	counts := make(map[string]int, len(snap.Employees))
	for _, emp := range snap.Employees {
		count := 0
		for _, date := range snap.Dates {
			if snap.Decoded(date, emp.ID).Worked() {
				count++
			}
		}
		counts[emp.ID] = count
	}
	return counts
}
