package shift

import (
	"strings"
)

// Decode は符号化されたシフト文字列を復号します。
//
// 先頭トークンが種別ラベル、ヘルプの場合は以降のトークンが「時間@店舗」形式の
// 割り当てになります。「@」を含まないトークンは店舗なしの割り当てとして扱います。
// 不正な値でもエラーにはせず、原文をラベルに保持した KindUnrecognized を返します。
func Decode(raw string) Decoded {
	if raw == "" || raw == ClearMarker {
		return Decoded{Kind: KindUnset}
	}

	parts := strings.Split(raw, ",")
	kind, ok := kindForLabel(parts[0])
	if !ok {
		return Decoded{Kind: KindUnrecognized, Label: raw}
	}

	if kind != KindHelp {
		// 固定ラベル種別に割り当てトークンが続く値は想定外の形なので原文のまま保持します。
		if len(parts) > 1 {
			return Decoded{Kind: KindUnrecognized, Label: raw}
		}
		return Decoded{Kind: kind, Label: parts[0]}
	}

	assignments := make([]Assignment, 0, len(parts)-1)
	for _, part := range parts[1:] {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if timePart, location, found := strings.Cut(token, "@"); found {
			assignments = append(assignments, Assignment{Time: timePart, Location: location})
		} else {
			assignments = append(assignments, Assignment{Time: token})
		}
	}
	if len(assignments) == 0 {
		assignments = nil
	}

	return Decoded{Kind: KindHelp, Label: LabelHelp, Assignments: assignments}
}

// DecodeValue はストレージ上の型が不定な値を復号します。
// nil や数値は未入力として扱い、文字列は Decode に委譲します。
func DecodeValue(value any) Decoded {
	switch v := value.(type) {
	case nil:
		return Decoded{Kind: KindUnset}
	case string:
		return Decode(v)
	case int, int32, int64, float32, float64:
		return Decoded{Kind: KindUnset}
	default:
		return Decoded{Kind: KindUnset}
	}
}

// Encode は種別と割り当てからシフト文字列を組み立てます。
// KindUnrecognized と KindUnset には定義されません（不明値は原文のまま受け渡します）。
func Encode(kind Kind, assignments []Assignment) (string, error) {
	label := LabelFor(kind)
	if label == "" {
		return "", ErrUnencodableKind
	}
	if kind != KindHelp {
		if len(assignments) > 0 {
			return "", ErrUnexpectedAssignments
		}
		return label, nil
	}

	var b strings.Builder
	b.WriteString(label)
	for _, a := range assignments {
		b.WriteString(",")
		b.WriteString(a.Time)
		if a.Location != "" {
			b.WriteString("@")
			b.WriteString(a.Location)
		}
	}
	return b.String(), nil
}
