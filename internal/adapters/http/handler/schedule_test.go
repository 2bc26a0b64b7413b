package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
)

type fakeScheduleUseCase struct {
	loadFn      func(ctx context.Context, p period.Period) (*schedule.Snapshot, error)
	saveFn      func(ctx context.Context, p period.Period, date time.Time, employeeID, value string) error
	bulkSaveFn  func(ctx context.Context, p period.Period, dates []time.Time, employeeID, value string) error
	addHolFn    func(ctx context.Context, p period.Period, date time.Time) error
	removeHolFn func(ctx context.Context, p period.Period, date time.Time) error
	quotaFn     func(ctx context.Context, p period.Period) (int, bool, error)
	saveQuotaFn func(ctx context.Context, p period.Period, days int) error
}

func (f *fakeScheduleUseCase) Load(ctx context.Context, p period.Period) (*schedule.Snapshot, error) {
	return f.loadFn(ctx, p)
}

func (f *fakeScheduleUseCase) SaveShift(ctx context.Context, p period.Period, date time.Time, employeeID, value string) error {
	return f.saveFn(ctx, p, date, employeeID, value)
}

func (f *fakeScheduleUseCase) BulkSaveShift(ctx context.Context, p period.Period, dates []time.Time, employeeID, value string) error {
	return f.bulkSaveFn(ctx, p, dates, employeeID, value)
}

func (f *fakeScheduleUseCase) AddHoliday(ctx context.Context, p period.Period, date time.Time) error {
	return f.addHolFn(ctx, p, date)
}

func (f *fakeScheduleUseCase) RemoveHoliday(ctx context.Context, p period.Period, date time.Time) error {
	return f.removeHolFn(ctx, p, date)
}

func (f *fakeScheduleUseCase) Quota(ctx context.Context, p period.Period) (int, bool, error) {
	return f.quotaFn(ctx, p)
}

func (f *fakeScheduleUseCase) SaveQuota(ctx context.Context, p period.Period, days int) error {
	return f.saveQuotaFn(ctx, p, days)
}

func newScheduleApp(svc schedule.UseCase) *fiber.App {
	app := fiber.New()
	h := NewScheduleHandler(svc)
	app.Get("/api/schedule/:year/:month", h.Get)
	app.Put("/api/schedule/:year/:month/shifts", h.SaveShifts)
	app.Post("/api/schedule/:year/:month/holidays", h.AddHoliday)
	app.Delete("/api/schedule/:year/:month/holidays/:date", h.RemoveHoliday)
	app.Put("/api/schedule/:year/:month/quota", h.SaveQuota)
	return app
}

func testSnapshot(t *testing.T) *schedule.Snapshot {
	t.Helper()

	p, err := period.New(2024, 1)
	if err != nil {
		t.Fatalf("failed to build period: %v", err)
	}

	employees := []*roster.Employee{
		{ID: "emp-1", Name: "佐藤", DisplayOrder: 1, IsActive: true},
		{ID: "emp-2", Name: "鈴木", DisplayOrder: 2, IsActive: true},
	}
	records := []schedule.Record{
		{Date: time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC), EmployeeID: "emp-1", Value: "ヘルプ,09:00@天文館店"},
		{Date: time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC), EmployeeID: "emp-2", Value: "有給"},
	}
	return schedule.NewSnapshot(p, records, nil, employees)
}

func TestScheduleHandler_Get(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	svc := &fakeScheduleUseCase{
		loadFn: func(ctx context.Context, p period.Period) (*schedule.Snapshot, error) {
			return snap, nil
		},
		quotaFn: func(ctx context.Context, p period.Period) (int, bool, error) {
			return 20, true, nil
		},
	}

	app := newScheduleApp(svc)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/schedule/2024/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body scheduleJSON
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Period.Start != "2024-01-16" || body.Period.End != "2024-02-15" {
		t.Errorf("unexpected period %+v", body.Period)
	}
	if body.Quota == nil || *body.Quota != 20 {
		t.Errorf("expected quota 20, got %v", body.Quota)
	}
	if len(body.Days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(body.Days))
	}
	if len(body.Employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(body.Employees))
	}
	if body.Counts["emp-1"] != 1 || body.Counts["emp-2"] != 1 {
		t.Errorf("unexpected counts %v", body.Counts)
	}

	day17 := body.Days[1]
	if day17.Date != "2024-01-17" || day17.Class != "weekday" {
		t.Fatalf("unexpected day %+v", day17)
	}
	if len(day17.FilledStores) != 1 || day17.FilledStores[0] != "天文館店" {
		t.Errorf("unexpected filled stores %v", day17.FilledStores)
	}
	if cell := day17.Cells["emp-1"]; cell.Value != "ヘルプ,09:00@天文館店" || len(cell.Segments) != 2 {
		t.Errorf("unexpected cell %+v", cell)
	}
}

func TestScheduleHandler_Get_QuotaAbsent(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	svc := &fakeScheduleUseCase{
		loadFn: func(ctx context.Context, p period.Period) (*schedule.Snapshot, error) {
			return snap, nil
		},
		quotaFn: func(ctx context.Context, p period.Period) (int, bool, error) {
			return 0, false, nil
		},
	}

	app := newScheduleApp(svc)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/schedule/2024/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body scheduleJSON
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Quota != nil {
		t.Errorf("expected null quota, got %v", *body.Quota)
	}
}

func TestScheduleHandler_Get_InvalidMonth(t *testing.T) {
	t.Parallel()

	app := newScheduleApp(&fakeScheduleUseCase{})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/schedule/2024/13", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestScheduleHandler_SaveShifts_SingleDate(t *testing.T) {
	t.Parallel()

	var saved struct {
		date  time.Time
		id    string
		value string
	}
	svc := &fakeScheduleUseCase{
		saveFn: func(ctx context.Context, p period.Period, date time.Time, employeeID, value string) error {
			saved.date, saved.id, saved.value = date, employeeID, value
			return nil
		},
	}

	app := newScheduleApp(svc)
	req := httptest.NewRequest(fiber.MethodPut, "/api/schedule/2024/1/shifts",
		strings.NewReader(`{"employeeId":"emp-1","value":"有給","dates":["2024-01-17"]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if saved.id != "emp-1" || saved.value != "有給" {
		t.Errorf("unexpected save %+v", saved)
	}
	if !saved.date.Equal(time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", saved.date)
	}
}

func TestScheduleHandler_SaveShifts_MultipleDatesUseBulk(t *testing.T) {
	t.Parallel()

	var bulkDates []time.Time
	svc := &fakeScheduleUseCase{
		bulkSaveFn: func(ctx context.Context, p period.Period, dates []time.Time, employeeID, value string) error {
			bulkDates = dates
			return nil
		},
	}

	app := newScheduleApp(svc)
	req := httptest.NewRequest(fiber.MethodPut, "/api/schedule/2024/1/shifts",
		strings.NewReader(`{"employeeId":"emp-1","value":"かご北","dates":["2024-01-17","2024-01-18","2024-01-19"]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if len(bulkDates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(bulkDates))
	}
}

func TestScheduleHandler_SaveShifts_MalformedDate(t *testing.T) {
	t.Parallel()

	app := newScheduleApp(&fakeScheduleUseCase{})
	req := httptest.NewRequest(fiber.MethodPut, "/api/schedule/2024/1/shifts",
		strings.NewReader(`{"employeeId":"emp-1","value":"有給","dates":["17/01/2024"]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestScheduleHandler_SaveShifts_OutOfPeriod(t *testing.T) {
	t.Parallel()

	svc := &fakeScheduleUseCase{
		saveFn: func(ctx context.Context, p period.Period, date time.Time, employeeID, value string) error {
			return schedule.ErrDateOutOfPeriod
		},
	}

	app := newScheduleApp(svc)
	req := httptest.NewRequest(fiber.MethodPut, "/api/schedule/2024/1/shifts",
		strings.NewReader(`{"employeeId":"emp-1","value":"有給","dates":["2024-03-01"]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	payload, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(payload), "error") {
		t.Errorf("expected error payload, got %s", payload)
	}
}

func TestScheduleHandler_HolidayRoundTrip(t *testing.T) {
	t.Parallel()

	var added, removed time.Time
	svc := &fakeScheduleUseCase{
		addHolFn: func(ctx context.Context, p period.Period, date time.Time) error {
			added = date
			return nil
		},
		removeHolFn: func(ctx context.Context, p period.Period, date time.Time) error {
			removed = date
			return nil
		},
	}

	app := newScheduleApp(svc)

	req := httptest.NewRequest(fiber.MethodPost, "/api/schedule/2024/1/holidays",
		strings.NewReader(`{"date":"2024-01-06"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("add request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for add, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/schedule/2024/1/holidays/2024-01-06", nil))
	if err != nil {
		t.Fatalf("remove request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for remove, got %d", resp.StatusCode)
	}

	want := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !added.Equal(want) || !removed.Equal(want) {
		t.Errorf("unexpected dates added=%v removed=%v", added, removed)
	}
}

func TestScheduleHandler_SaveQuota_Invalid(t *testing.T) {
	t.Parallel()

	svc := &fakeScheduleUseCase{
		saveQuotaFn: func(ctx context.Context, p period.Period, days int) error {
			return schedule.ErrInvalidQuota
		},
	}

	app := newScheduleApp(svc)
	req := httptest.NewRequest(fiber.MethodPut, "/api/schedule/2024/1/quota",
		strings.NewReader(`{"days":45}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
