package system

import (
	"go-outreach/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type DebugController struct {
	LogBuffer *logger.LogBuffer
}

func NewDebugController(logBuffer *logger.LogBuffer) *DebugController {
	return &DebugController{LogBuffer: logBuffer}
}

// GetRecentLogs godoc
// @Summary      Recent application logs
// @Description  Get the most recent log entries from the in-memory buffer
// @Tags         debug
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/debug/logs [get]
func (c *DebugController) GetRecentLogs(ctx *fiber.Ctx) error {
	entries := c.LogBuffer.Recent()
	return ctx.JSON(fiber.Map{
		"count": len(entries),
		"logs":  entries,
	})
}
