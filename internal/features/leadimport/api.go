package leadimport

import (
	"github.com/gofiber/fiber/v2"
)

type ImportApi struct {
	ImportController *ImportController
}

func NewImportApi(importController *ImportController) *ImportApi {
	return &ImportApi{
		ImportController: importController,
	}
}

func (api *ImportApi) Setup(app *fiber.App) {
	group := app.Group("/api/leads/import")

	group.Post("/preview", api.ImportController.Preview)
	group.Get("/sessions/:id", api.ImportController.GetSession)
	group.Patch("/sessions/:id/mapping", api.ImportController.UpdateMapping)
	group.Post("/sessions/:id/upload", api.ImportController.Upload)
	group.Delete("/sessions/:id", api.ImportController.Reset)
}
