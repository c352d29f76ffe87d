package system

import (
	"github.com/gofiber/fiber/v2"
)

type DebugApi struct {
	DebugController *DebugController
}

func NewDebugApi(debugController *DebugController) *DebugApi {
	return &DebugApi{DebugController: debugController}
}

func (h *DebugApi) Setup(app *fiber.App) {
	app.Get("/api/debug/logs", h.DebugController.GetRecentLogs)
}
