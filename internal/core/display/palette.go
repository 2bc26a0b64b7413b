package display

// 固定パレットです。対話表示と帳票出力の双方がこの値を参照します。
const (
	NeutralFG = "#373737"

	// 休み・有給の背景。平日もこの背景に中立色の文字を載せます。
	RestBG = "#FFE4E1"

	HolidayFG  = "#D32F2F"
	HolidayBG  = "#FFE4E1"
	SaturdayFG = "#1E88E5"
	SaturdayBG = "#E3F2FD"

	KagokitaBG = "#FFE599"
	RecruitBG  = "#C9E7CB"

	// ヘルプ充足済み店舗のハイライト背景。
	FilledHelpBG = "#D4EFDF"

	// 集計行（シフト日数）の背景。
	CountRowBG = "#E6F3FF"

	HeaderBG = "#808080"
	HeaderFG = "#FFFFFF"
)

// storeColors はヘルプ割り当ての店舗ごとの文字色です。未登録の店舗は中立色になります。
var storeColors = map[string]string{
	"天文館店":  "#C0392B",
	"中央駅店":  "#2471A3",
	"谷山店":   "#1E8449",
	"伊敷店":   "#9C640C",
	"姶良店":   "#7D3C98",
	"加治木店":  "#148F77",
	"いちき串木野店": "#B7950B",
}

// Areas は店舗選択 UI 向けのエリア別グルーピングです。
var Areas = map[string][]string{
	"市内": {"天文館店", "中央駅店", "谷山店", "伊敷店"},
	"郊外": {"姶良店", "加治木店", "いちき串木野店"},
}

// StoreColor は店舗の表示色を返します。未知の店舗には中立色を返します。
func StoreColor(store string) string {
	if c, ok := storeColors[store]; ok {
		return c
	}
	return NeutralFG
}
