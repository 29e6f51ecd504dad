package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mcordovar/datacenter-access/internal/registry"
)

// FacilitiesHandler serves facility reference data.
type FacilitiesHandler struct {
	store *registry.Store
}

// NewFacilitiesHandler constructs handler.
func NewFacilitiesHandler(store *registry.Store) *FacilitiesHandler {
	return &FacilitiesHandler{store: store}
}

// ListFacilities GET /facilities.
func (h *FacilitiesHandler) ListFacilities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Facilities()})
}

// ListRooms GET /facilities/:id/rooms.
func (h *FacilitiesHandler) ListRooms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.RoomsByFacility(c.Params("id"))})
}
