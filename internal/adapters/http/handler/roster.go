package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ogurasousui/kagokita-shift/internal/core/roster"
)

// RosterHandler はスタッフ管理 API の HTTP 実装です。
type RosterHandler struct {
	svc roster.UseCase
}

// NewRosterHandler は RosterHandler を生成します。
func NewRosterHandler(svc roster.UseCase) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// List はスタッフの一覧を表示順で返します。?all=true で退職済みを含めます。
func (h *RosterHandler) List(c *fiber.Ctx) error {
	var (
		employees []*roster.Employee
		err       error
	)
	if c.QueryBool("all") {
		employees, err = h.svc.ListAll(c.UserContext())
	} else {
		employees, err = h.svc.ListActive(c.UserContext())
	}
	if err != nil {
		return respondError(c, err)
	}

	items := make([]employeeJSON, 0, len(employees))
	for _, emp := range employees {
		items = append(items, toEmployeeJSON(emp))
	}
	return c.JSON(fiber.Map{"employees": items})
}

type createEmployeeRequest struct {
	Name string `json:"name"`
}

// Create はスタッフを追加します。表示順は末尾になります。
func (h *RosterHandler) Create(c *fiber.Ctx) error {
	var req createEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	created, err := h.svc.AddEmployee(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toEmployeeJSON(created))
}

type updateEmployeeRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// Update はスタッフの名前・在籍状態を部分更新します。
func (h *RosterHandler) Update(c *fiber.Ctx) error {
	var req updateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	updated, err := h.svc.UpdateEmployee(c.UserContext(), roster.UpdateEmployeeInput{
		ID:       c.Params("id"),
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toEmployeeJSON(updated))
}

type reorderRequest struct {
	Orders []orderChangeJSON `json:"orders"`
}

type orderChangeJSON struct {
	ID       string `json:"id"`
	NewOrder int    `json:"newOrder"`
}

// Reorder は表示順をまとめて入れ替えます。適用後の並びは 1..N の連番でなければなりません。
func (h *RosterHandler) Reorder(c *fiber.Ctx) error {
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	changes := make([]roster.OrderChange, 0, len(req.Orders))
	for _, order := range req.Orders {
		changes = append(changes, roster.OrderChange{ID: order.ID, NewOrder: order.NewOrder})
	}

	if err := h.svc.ReorderEmployees(c.UserContext(), changes); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete はスタッフを削除し、残りの表示順を詰め直します。
func (h *RosterHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteEmployee(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toEmployeeJSON(emp *roster.Employee) employeeJSON {
	return employeeJSON{
		ID:           emp.ID,
		Name:         emp.Name,
		DisplayOrder: emp.DisplayOrder,
		IsActive:     emp.IsActive,
	}
}
