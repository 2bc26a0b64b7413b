// Package display はシフトセルの表示属性への変換を提供します。
// 配色の規則はここに一本化されており、画面表示と帳票出力が同じ結果を得ます。
package display

import (
	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/shift"
)

// Segment は装飾付きテキストの一片です。色は未指定なら空文字です。
type Segment struct {
	Text       string `json:"text"`
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
}

// Present は復号済みシフトと日付区分から表示セグメント列を導出します。
// 未入力は空列、不明値は装飾なしの原文になります。
func Present(d shift.Decoded, class period.DayClass) []Segment {
	switch d.Kind {
	case shift.KindUnset:
		return nil
	case shift.KindDayOff, shift.KindPaidLeave:
		fg, bg := restPalette(class)
		return []Segment{{Text: d.Label, Foreground: fg, Background: bg}}
	case shift.KindKagokita:
		return []Segment{{Text: d.Label, Foreground: NeutralFG, Background: KagokitaBG}}
	case shift.KindRecruit:
		return []Segment{{Text: d.Label, Foreground: NeutralFG, Background: RecruitBG}}
	case shift.KindHelp:
		segments := make([]Segment, 0, len(d.Assignments)+1)
		segments = append(segments, Segment{Text: d.Label, Foreground: NeutralFG})
		for _, a := range d.Assignments {
			segments = append(segments, assignmentSegment(a))
		}
		return segments
	default:
		return []Segment{{Text: d.Label}}
	}
}

// restPalette は休み・有給ラベルの配色を日付区分から選びます。
// ラベル自体は店舗に依存せず、暦の区分のみで塗り分けます。
func restPalette(class period.DayClass) (fg, bg string) {
	switch class {
	case period.ClassSunday, period.ClassHoliday:
		return HolidayFG, HolidayBG
	case period.ClassSaturday:
		return SaturdayFG, SaturdayBG
	default:
		return NeutralFG, RestBG
	}
}

func assignmentSegment(a shift.Assignment) Segment {
	text := a.Time
	if a.Location != "" {
		text = a.Time + "@" + a.Location
	}
	// かご北への応援は店舗色ではなく、かご北固定の背景を使います。
	if a.Location == shift.LabelKagokita {
		return Segment{Text: text, Foreground: NeutralFG, Background: KagokitaBG}
	}
	return Segment{Text: text, Foreground: StoreColor(a.Location)}
}

// FilledLocations は同じ日の全員分のシフトから、ヘルプ割り当てが入っている店舗の集合を返します。
// ヘルプ表の充足済み店舗ハイライトに使われます。
func FilledLocations(decoded []shift.Decoded) map[string]bool {
	filled := make(map[string]bool)
	for _, d := range decoded {
		if d.Kind != shift.KindHelp {
			continue
		}
		for _, a := range d.Assignments {
			if a.Location != "" {
				filled[a.Location] = true
			}
		}
	}
	return filled
}
