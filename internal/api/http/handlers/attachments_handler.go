package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mcordovar/datacenter-access/internal/api/dto"
	"github.com/mcordovar/datacenter-access/internal/attachments"
	"github.com/mcordovar/datacenter-access/pkg/util"
)

// AttachmentsHandler manages per-subject captured-photo metadata.
type AttachmentsHandler struct {
	photos *attachments.Store
}

// NewAttachmentsHandler constructs handler.
func NewAttachmentsHandler(photos *attachments.Store) *AttachmentsHandler {
	return &AttachmentsHandler{photos: photos}
}

// ListPhotos GET /attachments/:subject.
func (h *AttachmentsHandler) ListPhotos(c *fiber.Ctx) error {
	photos, err := h.photos.List(c.Context(), c.Params("subject"))
	if err != nil {
		return util.NewInternalError(err)
	}
	items := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		items = append(items, dto.PhotoResponse(p))
	}
	return c.JSON(fiber.Map{"data": items})
}

// AddPhoto POST /attachments/:subject.
func (h *AttachmentsHandler) AddPhoto(c *fiber.Ctx) error {
	var req dto.AddPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Base64Data) == "" {
		return util.NewValidationError("base64_data required", nil)
	}

	photo, err := h.photos.Add(c.Context(), c.Params("subject"), attachments.Photo{
		Name:       req.Name,
		FilePath:   req.FilePath,
		Base64Data: req.Base64Data,
	})
	if err != nil {
		return util.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.PhotoResponse(*photo)})
}

// ReplacePhotos PUT /attachments/:subject replaces the subject's photo array
// wholesale.
func (h *AttachmentsHandler) ReplacePhotos(c *fiber.Ctx) error {
	var req []dto.PhotoResponse
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	photos := make([]attachments.Photo, 0, len(req))
	for _, p := range req {
		photos = append(photos, attachments.Photo(p))
	}
	if err := h.photos.Save(c.Context(), c.Params("subject"), photos); err != nil {
		return util.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"count": len(photos)}})
}

// PurgePhotos DELETE /attachments/:subject.
func (h *AttachmentsHandler) PurgePhotos(c *fiber.Ctx) error {
	if err := h.photos.Purge(c.Context(), c.Params("subject")); err != nil {
		return util.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"purged": true}})
}
