package leadimport

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ImportController struct {
	ImportService ImportService
}

func NewImportController(importService ImportService) *ImportController {
	return &ImportController{
		ImportService: importService,
	}
}

// mappingUpdateRequest is the single mapping mutation the UI can issue
type mappingUpdateRequest struct {
	SourceColumn string      `json:"source_column"`
	TargetField  TargetField `json:"target_field"`
}

// uploadRequest carries the duplicate-check scopes; all default to on
type uploadRequest struct {
	Campaigns *bool `json:"campaigns"`
	Lists     *bool `json:"lists"`
	Workspace *bool `json:"workspace"`
}

// Preview godoc
// @Summary Upload and preview a lead file
// @Description Upload a CSV file, parse it, and get inferred column mappings with sample values
// @Tags leads-import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Lead CSV File"
// @Success 201 {object} ImportSession
// @Failure 400 {object} map[string]interface{}
// @Router /api/leads/import/preview [post]
func (c *ImportController) Preview(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	session, err := c.ImportService.CreateSession(ctx.UserContext(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary Get an import session
// @Description Get the current state, mappings, and samples of an import session
// @Tags leads-import
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ImportSession
// @Failure 404 {object} map[string]interface{}
// @Router /api/leads/import/sessions/{id} [get]
func (c *ImportController) GetSession(ctx *fiber.Ctx) error {
	session, err := c.ImportService.GetSession(ctx.Params("id"))
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(session)
}

// UpdateMapping godoc
// @Summary Remap one column
// @Description Set the target field for a single source column; samples and other columns are untouched
// @Tags leads-import
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param mapping body mappingUpdateRequest true "Mapping update"
// @Success 200 {object} ImportSession
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/leads/import/sessions/{id}/mapping [patch]
func (c *ImportController) UpdateMapping(ctx *fiber.Ctx) error {
	var req mappingUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.SourceColumn == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source_column is required"})
	}

	session, err := c.ImportService.UpdateMapping(ctx.Params("id"), req.SourceColumn, req.TargetField)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(session)
}

// Upload godoc
// @Summary Upload the transformed batch
// @Description Transform the rows per the current mapping and hand the batch to the lead-ingestion service
// @Tags leads-import
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param options body uploadRequest false "Duplicate-check scopes (default all enabled)"
// @Success 200 {object} UploadResult
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/leads/import/sessions/{id}/upload [post]
func (c *ImportController) Upload(ctx *fiber.Ctx) error {
	dedup := DefaultDedupConfig()

	var req uploadRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if req.Campaigns != nil {
			dedup.Campaigns = *req.Campaigns
		}
		if req.Lists != nil {
			dedup.Lists = *req.Lists
		}
		if req.Workspace != nil {
			dedup.Workspace = *req.Workspace
		}
	}

	result, err := c.ImportService.Upload(ctx.UserContext(), ctx.Params("id"), dedup)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

// Reset godoc
// @Summary Discard an import session
// @Description Reset a settled session so a new import can start
// @Tags leads-import
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/leads/import/sessions/{id} [delete]
func (c *ImportController) Reset(ctx *fiber.Ctx) error {
	if err := c.ImportService.ResetSession(ctx.Params("id")); err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "session discarded"})
}

// statusForError maps the pipeline's error taxonomy onto HTTP statuses
func statusForError(err error) int {
	var tooMany *TooManyRowsError
	var badTransition *InvalidTransitionError
	var uploadErr *UploadError

	switch {
	case errors.Is(err, ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUnsupportedFile),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrEmptyFile),
		errors.Is(err, ErrNoEmailColumn),
		errors.Is(err, ErrUnknownColumn),
		errors.Is(err, ErrInvalidTargetField):
		return fiber.StatusBadRequest
	case errors.As(err, &tooMany):
		return fiber.StatusBadRequest
	case errors.As(err, &badTransition):
		return fiber.StatusConflict
	case errors.As(err, &uploadErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusBadRequest
	}
}
