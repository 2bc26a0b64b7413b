package handler

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ogurasousui/kagokita-shift/internal/core/display"
	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
)

const dateLayout = "2006-01-02"

// ScheduleHandler はスケジュール API の HTTP 実装です。
type ScheduleHandler struct {
	svc schedule.UseCase
}

// NewScheduleHandler は ScheduleHandler を生成します。
func NewScheduleHandler(svc schedule.UseCase) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

type periodJSON struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type employeeJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

type cellJSON struct {
	Value    string            `json:"value"`
	Segments []display.Segment `json:"segments,omitempty"`
}

type dayJSON struct {
	Date         string              `json:"date"`
	Weekday      string              `json:"weekday"`
	Class        string              `json:"class"`
	FilledStores []string            `json:"filledStores,omitempty"`
	Cells        map[string]cellJSON `json:"cells"`
}

type scheduleJSON struct {
	Period    periodJSON     `json:"period"`
	Quota     *int           `json:"quota"`
	Holidays  []string       `json:"holidays"`
	Employees []employeeJSON `json:"employees"`
	Days      []dayJSON      `json:"days"`
	Counts    map[string]int `json:"counts"`
}

// Get は月度のスケジュール全体を返します。
// セルは整形済みセグメント付きで、末尾に勤務日数と定数（必要労働日数）が付きます。
func (h *ScheduleHandler) Get(c *fiber.Ctx) error {
	p, err := parsePeriod(c)
	if err != nil {
		return respondError(c, err)
	}

	snap, err := h.svc.Load(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}

	quota, found, err := h.svc.Quota(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}

	resp := scheduleJSON{
		Period:    toPeriodJSON(p),
		Holidays:  toHolidayList(snap),
		Employees: toEmployeeList(snap),
		Days:      toDayList(snap),
		Counts:    schedule.WorkedDayCounts(snap),
	}
	if found {
		resp.Quota = &quota
	}
	return c.JSON(resp)
}

type saveShiftRequest struct {
	EmployeeID string   `json:"employeeId"`
	Value      string   `json:"value"`
	Dates      []string `json:"dates"`
}

// SaveShifts はシフトを保存します。日付が複数あれば一括保存になります。
func (h *ScheduleHandler) SaveShifts(c *fiber.Ctx) error {
	p, err := parsePeriod(c)
	if err != nil {
		return respondError(c, err)
	}

	var req saveShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return respondBadRequest(c, err.Error())
	}

	if len(dates) == 1 {
		err = h.svc.SaveShift(c.UserContext(), p, dates[0], req.EmployeeID, req.Value)
	} else {
		err = h.svc.BulkSaveShift(c.UserContext(), p, dates, req.EmployeeID, req.Value)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type holidayRequest struct {
	Date string `json:"date"`
}

// AddHoliday はカスタム祝日を追加します。
func (h *ScheduleHandler) AddHoliday(c *fiber.Ctx) error {
	p, err := parsePeriod(c)
	if err != nil {
		return respondError(c, err)
	}

	var req holidayRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return respondBadRequest(c, "date must be formatted as 2006-01-02")
	}

	if err := h.svc.AddHoliday(c.UserContext(), p, date); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveHoliday はカスタム祝日を削除します。
func (h *ScheduleHandler) RemoveHoliday(c *fiber.Ctx) error {
	p, err := parsePeriod(c)
	if err != nil {
		return respondError(c, err)
	}

	date, err := time.Parse(dateLayout, c.Params("date"))
	if err != nil {
		return respondBadRequest(c, "date must be formatted as 2006-01-02")
	}

	if err := h.svc.RemoveHoliday(c.UserContext(), p, date); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type quotaRequest struct {
	Days int `json:"days"`
}

// SaveQuota は必要労働日数を保存します。
func (h *ScheduleHandler) SaveQuota(c *fiber.Ctx) error {
	p, err := parsePeriod(c)
	if err != nil {
		return respondError(c, err)
	}

	var req quotaRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	if err := h.svc.SaveQuota(c.UserContext(), p, req.Days); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parsePeriod(c *fiber.Ctx) (period.Period, error) {
	year, err := c.ParamsInt("year")
	if err != nil {
		return period.Period{}, period.ErrInvalidPeriod
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return period.Period{}, period.ErrInvalidPeriod
	}
	return period.New(year, month)
}

func parseDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, value := range values {
		date, err := time.Parse(dateLayout, value)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "dates must be formatted as 2006-01-02")
		}
		dates = append(dates, date)
	}
	return dates, nil
}

func toPeriodJSON(p period.Period) periodJSON {
	start, end := p.Bounds()
	return periodJSON{
		Year:  p.Year,
		Month: p.Month,
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
		Label: p.String(),
	}
}

func toHolidayList(snap *schedule.Snapshot) []string {
	holidays := make([]string, 0, len(snap.Holidays))
	for date := range snap.Holidays {
		holidays = append(holidays, date.Format(dateLayout))
	}
	sort.Strings(holidays)
	return holidays
}

func toEmployeeList(snap *schedule.Snapshot) []employeeJSON {
	employees := make([]employeeJSON, 0, len(snap.Employees))
	for _, emp := range snap.Employees {
		employees = append(employees, employeeJSON{
			ID:           emp.ID,
			Name:         emp.Name,
			DisplayOrder: emp.DisplayOrder,
			IsActive:     emp.IsActive,
		})
	}
	return employees
}

func toDayList(snap *schedule.Snapshot) []dayJSON {
	days := make([]dayJSON, 0, len(snap.Dates))
	for _, date := range snap.Dates {
		class := snap.Class(date)

		cells := make(map[string]cellJSON, len(snap.Employees))
		for _, emp := range snap.Employees {
			decoded := snap.Decoded(date, emp.ID)
			cells[emp.ID] = cellJSON{
				Value:    snap.Value(date, emp.ID),
				Segments: display.Present(decoded, class),
			}
		}

		days = append(days, dayJSON{
			Date:         date.Format(dateLayout),
			Weekday:      period.WeekdayJP(date),
			Class:        classLabel(class),
			FilledStores: filledStoreList(snap, date),
			Cells:        cells,
		})
	}
	return days
}

func classLabel(class period.DayClass) string {
	switch class {
	case period.ClassSaturday:
		return "saturday"
	case period.ClassSunday:
		return "sunday"
	case period.ClassHoliday:
		return "holiday"
	default:
		return "weekday"
	}
}

func filledStoreList(snap *schedule.Snapshot, date time.Time) []string {
	filled := display.FilledLocations(snap.DecodedRow(date))
	stores := make([]string, 0, len(filled))
	for store := range filled {
		stores = append(stores, store)
	}
	sort.Strings(stores)
	return stores
}
