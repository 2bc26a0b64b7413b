package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ogurasousui/kagokita-shift/internal/core/period"
	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
	"github.com/ogurasousui/kagokita-shift/internal/core/schedule"
)

// statusForError はコア層のエラーを HTTP ステータスへ写像します。
// 未知のエラーはすべて 500 に落とします。
func statusForError(err error) int {
	switch {
	case errors.Is(err, period.ErrInvalidPeriod),
		errors.Is(err, schedule.ErrDateOutOfPeriod),
		errors.Is(err, schedule.ErrInvalidQuota),
		errors.Is(err, schedule.ErrNoDates),
		errors.Is(err, roster.ErrInvalidID),
		errors.Is(err, roster.ErrInvalidName):
		return fiber.StatusBadRequest
	case errors.Is(err, roster.ErrInvalidOrdering):
		return fiber.StatusConflict
	case errors.Is(err, roster.ErrEmployeeNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}

func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
