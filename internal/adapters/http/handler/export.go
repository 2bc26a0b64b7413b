package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
	"github.com/ogurasousui/kagokita-shift/internal/exporter"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler は帳票ダウンロード API の HTTP 実装です。
type ExportHandler struct {
	svc      schedule.UseCase
	exporter *exporter.Exporter
}

// NewExportHandler は ExportHandler を生成します。
func NewExportHandler(svc schedule.UseCase, exp *exporter.Exporter) *ExportHandler {
	return &ExportHandler{svc: svc, exporter: exp}
}

// HelpTable は月度全体のヘルプ表ワークブックを返します。
func (h *ExportHandler) HelpTable(c *fiber.Ctx) error {
	p, err := parsePeriod(c)
	if err != nil {
		return respondError(c, err)
	}

	snap, err := h.svc.Load(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}

	book, err := h.exporter.BuildHelpTable(snap, schedule.WorkedDayCounts(snap))
	if err != nil {
		return respondError(c, err)
	}
	defer book.Close()

	filename := fmt.Sprintf("help_table_%04d%02d.xlsx", p.Year, p.Month)
	return sendWorkbook(c, book, filename)
}

// Individual は 1 スタッフ分のシフト表ワークブックを返します。
// 対象は有効スタッフに限られ、見つからなければ 404 になります。
func (h *ExportHandler) Individual(c *fiber.Ctx) error {
	p, err := parsePeriod(c)
	if err != nil {
		return respondError(c, err)
	}

	snap, err := h.svc.Load(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}

	employeeID := c.Params("employeeId")
	employee := findEmployee(snap, employeeID)
	if employee == nil {
		return respondError(c, fmt.Errorf("%w: %s", roster.ErrEmployeeNotFound, employeeID))
	}

	counts := schedule.WorkedDayCounts(snap)
	book, err := h.exporter.BuildIndividual(snap, employee, counts[employee.ID])
	if err != nil {
		return respondError(c, err)
	}
	defer book.Close()

	filename := fmt.Sprintf("shift_%s_%04d%02d.xlsx", employee.ID, p.Year, p.Month)
	return sendWorkbook(c, book, filename)
}

func findEmployee(snap *schedule.Snapshot, id string) *roster.Employee {
	for _, emp := range snap.Employees {
		if emp.ID == id {
			return emp
		}
	}
	return nil
}

func sendWorkbook(c *fiber.Ctx, book *excelize.File, filename string) error {
	buf, err := book.WriteToBuffer()
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, workbookContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
