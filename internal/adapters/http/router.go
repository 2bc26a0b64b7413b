// Package http は Fiber アプリへのルート登録をまとめます。
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ogurasousui/kagokita-shift/internal/adapters/http/handler"
)

// RegisterRoutes は API のルートを登録します。
func RegisterRoutes(app *fiber.App, scheduleH *handler.ScheduleHandler, rosterH *handler.RosterHandler, exportH *handler.ExportHandler) {
	api := app.Group("/api")

	api.Get("/schedule/:year/:month", scheduleH.Get)
	api.Put("/schedule/:year/:month/shifts", scheduleH.SaveShifts)
	api.Post("/schedule/:year/:month/holidays", scheduleH.AddHoliday)
	api.Delete("/schedule/:year/:month/holidays/:date", scheduleH.RemoveHoliday)
	api.Put("/schedule/:year/:month/quota", scheduleH.SaveQuota)

	api.Get("/schedule/:year/:month/export", exportH.HelpTable)
	api.Get("/schedule/:year/:month/export/:employeeId", exportH.Individual)

	api.Get("/employees", rosterH.List)
	api.Post("/employees", rosterH.Create)
	api.Put("/employees/order", rosterH.Reorder)
	api.Patch("/employees/:id", rosterH.Update)
	api.Delete("/employees/:id", rosterH.Delete)
}
