package shift

// Kind はシフト区分を表します。
type Kind string

const (
	// KindUnset は未入力セルを表します。空文字・"-"・レコード欠落・数値はすべてここに正規化されます。
	KindUnset        Kind = "unset"
	KindDayOff       Kind = "day_off"
	KindPaidLeave    Kind = "paid_leave"
	KindKagokita     Kind = "kagokita"
	KindRecruit      Kind = "recruit"
	KindHelp         Kind = "help"
	KindUnrecognized Kind = "unrecognized"
)

// 固定のシフト種別ラベルです。
const (
	LabelDayOff    = "休み"
	LabelPaidLeave = "有給"
	LabelKagokita  = "かご北"
	LabelRecruit   = "リクルート"
	LabelHelp      = "ヘルプ"

	// ClearMarker は「シフト取り消し」を表す保存値です。保存時は削除のみ行われます。
	ClearMarker = "-"
)

// Assignment はヘルプシフト内の 1 件の割り当て（時間帯と店舗）です。
type Assignment struct {
	Time     string
	Location string
}

// Decoded は符号化されたシフト値を復号した結果です。永続化されず、読み取りのたびに導出されます。
type Decoded struct {
	Kind  Kind
	Label string
	// Assignments は Kind が KindHelp の場合のみ非空になります。
	Assignments []Assignment
}

// IsBlank は表示も集計もされない未入力状態かどうかを返します。
func (d Decoded) IsBlank() bool {
	return d.Kind == KindUnset
}

// Worked は勤務日として 1 日にカウントされるかどうかを返します。
// 休みと未入力以外（有給・固定店舗・ヘルプ・不明値）はすべて 1 日です。
func (d Decoded) Worked() bool {
	return d.Kind != KindUnset && d.Kind != KindDayOff
}

func kindForLabel(label string) (Kind, bool) {
	switch label {
	case LabelDayOff:
		return KindDayOff, true
	case LabelPaidLeave:
		return KindPaidLeave, true
	case LabelKagokita:
		return KindKagokita, true
	case LabelRecruit:
		return KindRecruit, true
	case LabelHelp:
		return KindHelp, true
	default:
		return KindUnrecognized, false
	}
}

// LabelFor は区分の固定ラベルを返します。ラベルを持たない区分では空文字を返します。
func LabelFor(kind Kind) string {
	switch kind {
	case KindDayOff:
		return LabelDayOff
	case KindPaidLeave:
		return LabelPaidLeave
	case KindKagokita:
		return LabelKagokita
	case KindRecruit:
		return LabelRecruit
	case KindHelp:
		return LabelHelp
	default:
		return ""
	}
}
