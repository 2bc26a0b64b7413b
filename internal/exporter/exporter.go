// Package exporter はスケジュールの帳票（ワークブック）を生成します。
// セルの文言と配色は display パッケージの整形結果をそのまま使い、画面表示と揃えます。
package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ogurasousui/kagokita-shift/internal/core/display"
	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
)

const (
	helpSheetName = "ヘルプ表"
	countRowLabel = "シフト日数"
)

// Exporter はワークブック出力器です。
type Exporter struct{}

// New は Exporter を生成します。
func New() *Exporter {
	return &Exporter{}
}

// BuildHelpTable は月度全体のヘルプ表ワークブックを生成します。
// 行は日付、列はスタッフで、末尾にシフト日数の集計行が付きます。
func (e *Exporter) BuildHelpTable(snap *schedule.Snapshot, counts map[string]int) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", helpSheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("exporter: rename sheet: %w", err)
	}

	title := fmt.Sprintf("%s %s", snap.Period.String(), helpSheetName)
	if err := f.SetCellStr(helpSheetName, "A1", title); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("exporter: title: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: hex(display.HeaderFG)},
		Fill:      solidFill(display.HeaderBG),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("exporter: header style: %w", err)
	}

	const headerRow = 2
	headers := []string{"日付", "曜日"}
	for _, emp := range snap.Employees {
		headers = append(headers, emp.Name)
	}
	for col, text := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, headerRow)
		if err := f.SetCellStr(helpSheetName, cell, text); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("exporter: header cell: %w", err)
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	firstCol, _ := excelize.CoordinatesToCellName(1, headerRow)
	if err := f.SetCellStyle(helpSheetName, firstCol, lastCol, headerStyle); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("exporter: header row style: %w", err)
	}

	for i, date := range snap.Dates {
		row := headerRow + 1 + i
		class := snap.Class(date)

		dateCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellStr(helpSheetName, dateCell, date.Format("2006-01-02")); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("exporter: date cell: %w", err)
		}
		weekdayCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellStr(helpSheetName, weekdayCell, period.WeekdayJP(date)); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("exporter: weekday cell: %w", err)
		}

		if bg := rowBackground(class); bg != "" {
			style, err := f.NewStyle(&excelize.Style{Fill: solidFill(bg)})
			if err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("exporter: row style: %w", err)
			}
			endCell, _ := excelize.CoordinatesToCellName(len(headers), row)
			if err := f.SetCellStyle(helpSheetName, dateCell, endCell, style); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("exporter: row fill: %w", err)
			}
		}

		for j, emp := range snap.Employees {
			segments := display.Present(snap.Decoded(date, emp.ID), class)
			cell, _ := excelize.CoordinatesToCellName(3+j, row)
			if err := e.writeSegments(f, cell, segments); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	if err := e.writeCountRow(f, snap, counts, headerRow+len(snap.Dates)+2, len(headers)); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// BuildIndividual は 1 スタッフ分のシフト表ワークブックを生成します。
// 割り当ては 1 件ごとに列へ分かれ、タイトルに勤務日数が入ります。
func (e *Exporter) BuildIndividual(snap *schedule.Snapshot, employee *roster.Employee, count int) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := fmt.Sprintf("%sさん", employee.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("exporter: rename sheet: %w", err)
	}

	maxSlots := 1
	for _, date := range snap.Dates {
		d := snap.Decoded(date, employee.ID)
		if n := len(d.Assignments) + 1; n > maxSlots {
			maxSlots = n
		}
	}

	title := fmt.Sprintf("%sさん %d年%d月 シフト表 (%s: %d日)", employee.Name, snap.Period.Year, snap.Period.Month, countRowLabel, count)
	if err := f.SetCellStr(sheet, "A1", title); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("exporter: title: %w", err)
	}

	const headerRow = 2
	headers := []string{"日付", "曜日"}
	for i := 0; i < maxSlots; i++ {
		headers = append(headers, fmt.Sprintf("シフト%d", i+1))
	}
	for col, text := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, headerRow)
		if err := f.SetCellStr(sheet, cell, text); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("exporter: header cell: %w", err)
		}
	}

	for i, date := range snap.Dates {
		row := headerRow + 1 + i
		class := snap.Class(date)

		dateCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellStr(sheet, dateCell, date.Format("01/02")); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("exporter: date cell: %w", err)
		}
		weekdayCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellStr(sheet, weekdayCell, period.WeekdayJP(date)); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("exporter: weekday cell: %w", err)
		}

		if bg := rowBackground(class); bg != "" {
			style, err := f.NewStyle(&excelize.Style{Fill: solidFill(bg)})
			if err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("exporter: row style: %w", err)
			}
			endCell, _ := excelize.CoordinatesToCellName(len(headers), row)
			if err := f.SetCellStyle(sheet, dateCell, endCell, style); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("exporter: row fill: %w", err)
			}
		}

		segments := display.Present(snap.Decoded(date, employee.ID), class)
		for j, segment := range segments {
			cell, _ := excelize.CoordinatesToCellName(3+j, row)
			if err := e.writeSegments(f, cell, []display.Segment{segment}); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// writeSegments はセグメント列を 1 セルへ書き込みます。
// 複数セグメントは改行区切りのリッチテキストになり、セグメントごとの文字色が保たれます。
func (e *Exporter) writeSegments(f *excelize.File, cell string, segments []display.Segment) error {
	if len(segments) == 0 {
		return nil
	}
	sheet := f.GetSheetName(0)

	runs := make([]excelize.RichTextRun, 0, len(segments)*2)
	for i, segment := range segments {
		if i > 0 {
			runs = append(runs, excelize.RichTextRun{Text: "\n"})
		}
		run := excelize.RichTextRun{Text: segment.Text}
		if segment.Foreground != "" {
			run.Font = &excelize.Font{Bold: true, Color: hex(segment.Foreground)}
		}
		runs = append(runs, run)
	}
	if err := f.SetCellRichText(sheet, cell, runs); err != nil {
		return fmt.Errorf("exporter: rich text: %w", err)
	}

	style := &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}
	if bg := segmentBackground(segments); bg != "" {
		style.Fill = solidFill(bg)
	}
	styleID, err := f.NewStyle(style)
	if err != nil {
		return fmt.Errorf("exporter: cell style: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("exporter: apply style: %w", err)
	}
	return nil
}

func (e *Exporter) writeCountRow(f *excelize.File, snap *schedule.Snapshot, counts map[string]int, row, width int) error {
	labelCell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetCellStr(helpSheetName, labelCell, countRowLabel); err != nil {
		return fmt.Errorf("exporter: count label: %w", err)
	}
	for j, emp := range snap.Employees {
		cell, _ := excelize.CoordinatesToCellName(3+j, row)
		if err := f.SetCellInt(helpSheetName, cell, int64(counts[emp.ID])); err != nil {
			return fmt.Errorf("exporter: count cell: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: solidFill(display.CountRowBG),
	})
	if err != nil {
		return fmt.Errorf("exporter: count style: %w", err)
	}
	endCell, _ := excelize.CoordinatesToCellName(width, row)
	if err := f.SetCellStyle(helpSheetName, labelCell, endCell, style); err != nil {
		return fmt.Errorf("exporter: count row style: %w", err)
	}
	return nil
}

// rowBackground は日付区分による行の背景色です。平日は塗りません。
func rowBackground(class period.DayClass) string {
	switch class {
	case period.ClassSunday, period.ClassHoliday:
		return display.HolidayBG
	case period.ClassSaturday:
		return display.SaturdayBG
	default:
		return ""
	}
}

// segmentBackground はセル全体へ反映する背景色です。
// 休み・有給・固定店舗のような単一セグメントの背景のみが対象です。
func segmentBackground(segments []display.Segment) string {
	if len(segments) == 1 {
		return segments[0].Background
	}
	return ""
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex(color)}}
}

func hex(color string) string {
	return strings.TrimPrefix(color, "#")
}
