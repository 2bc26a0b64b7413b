package period

import (
	"time"

	holiday_jp "github.com/holiday-jp/holiday_jp-go"
)

// DayClass は日付の区分です。配色選択に使われるため、判定順に意味があります。
type DayClass string

const (
	ClassWeekday  DayClass = "weekday"
	ClassSaturday DayClass = "saturday"
	ClassSunday   DayClass = "sunday"
	ClassHoliday  DayClass = "holiday"
)

// HolidaySet はカスタム祝日の集合です。キーは UTC の暦日です。
type HolidaySet map[time.Time]struct{}

// NewHolidaySet は日付列からカスタム祝日集合を作ります。重複は吸収されます。
func NewHolidaySet(dates ...time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[DateOf(d)] = struct{}{}
	}
	return set
}

// Contains は日付がカスタム祝日かどうかを返します。
func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[DateOf(date)]
	return ok
}

// Classify は日付を区分します。
// 日曜・祝日（国民の祝日またはカスタム祝日）が土曜より優先されるため、
// 土曜かつ祝日の日は ClassHoliday になります。
func Classify(date time.Time, custom HolidaySet) DayClass {
	d := DateOf(date)
	switch {
	case d.Weekday() == time.Sunday:
		return ClassSunday
	case holiday_jp.IsHoliday(d) || custom.Contains(d):
		return ClassHoliday
	case d.Weekday() == time.Saturday:
		return ClassSaturday
	default:
		return ClassWeekday
	}
}

// IsRestDay は初期値で「休み」を設定する日かどうかを返します。
func IsRestDay(class DayClass) bool {
	return class != ClassWeekday
}

var weekdayJA = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// WeekdayJP は日本語の曜日一文字を返します。
func WeekdayJP(date time.Time) string {
	return weekdayJA[int(date.Weekday())]
}
