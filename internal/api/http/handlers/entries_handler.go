package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mcordovar/datacenter-access/internal/api/dto"
	"github.com/mcordovar/datacenter-access/internal/auth"
	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/query"
	"github.com/mcordovar/datacenter-access/internal/registry"
	"github.com/mcordovar/datacenter-access/internal/validation"
	"github.com/mcordovar/datacenter-access/pkg/util"
)

// EntriesHandler manages access-entry endpoints.
type EntriesHandler struct {
	store *registry.Store
}

// NewEntriesHandler constructs handler.
func NewEntriesHandler(store *registry.Store) *EntriesHandler {
	return &EntriesHandler{store: store}
}

// CreateEntry POST /entries.
func (h *EntriesHandler) CreateEntry(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("operator required")
	}
	var req dto.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if details := validateCreateEntry(req); len(details) > 0 {
		return util.NewValidationError("invalid entry form", details)
	}

	record, err := h.store.CreateRecord(c.Context(), registry.EntryForm{
		TechnicianGivenName:  req.TechnicianGivenName,
		TechnicianFamilyName: req.TechnicianFamilyName,
		TechnicianRUT:        req.TechnicianRUT,
		TechnicianCompany:    req.TechnicianCompany,
		TechnicianPhone:      req.TechnicianPhone,
		TechnicianEmail:      req.TechnicianEmail,
		FacilityID:           req.FacilityID,
		RoomID:               req.RoomID,
		TicketType:           req.TicketType,
		TicketNumber:         req.TicketNumber,
		ActivityResponsible:  req.ActivityResponsible,
		Authorizer:           req.Authorizer,
		Purpose:              req.Purpose,
		Notes:                req.Notes,
		CreatedBy:            principal.Username,
	})
	if err != nil && record == nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.DetailFromRecord(record)})
}

// ListEntries GET /entries with optional filter query parameters.
func (h *EntriesHandler) ListEntries(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}
	records := query.Filter(h.store.Records(), criteria)
	items := make([]dto.EntrySummary, 0, len(records))
	for i := range records {
		items = append(items, dto.FromRecord(&records[i]))
	}
	return c.JSON(fiber.Map{"data": dto.EntryListResponse{
		Items:         items,
		ActiveFilters: query.CountActive(criteria),
	}})
}

// SearchEntries GET /entries/search. The free-text term matches the report
// field set (name, company, ticket number, purpose), unlike the listing's
// quick-search parameter.
func (h *EntriesHandler) SearchEntries(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}
	criteria.QuickSearch = ""
	if term := c.Query("q"); term != "" {
		criteria.ReportSearch = term
	}

	records := query.Filter(h.store.Records(), criteria)
	items := make([]dto.EntrySummary, 0, len(records))
	for i := range records {
		items = append(items, dto.FromRecord(&records[i]))
	}
	return c.JSON(fiber.Map{"data": dto.EntryListResponse{
		Items:         items,
		ActiveFilters: query.CountActive(criteria),
	}})
}

// GetEntry GET /entries/:id.
func (h *EntriesHandler) GetEntry(c *fiber.Ctx) error {
	record, err := h.store.GetRecord(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DetailFromRecord(record)})
}

// UpdateEntry PATCH /entries/:id.
func (h *EntriesHandler) UpdateEntry(c *fiber.Ctx) error {
	var req dto.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	record, err := h.store.UpdateRecord(c.Context(), c.Params("id"), registry.EntryChanges{
		TicketType:          req.TicketType,
		TicketNumber:        req.TicketNumber,
		ActivityResponsible: req.ActivityResponsible,
		Authorizer:          req.Authorizer,
		ExitDate:            req.ExitDate,
		ExitTime:            req.ExitTime,
		Purpose:             req.Purpose,
		Notes:               req.Notes,
		Status:              req.Status,
		Documents:           req.Documents,
	})
	if err != nil && record == nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DetailFromRecord(record)})
}

// DeleteEntry DELETE /entries/:id.
func (h *EntriesHandler) DeleteEntry(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteRecord(c.Context(), c.Params("id"))
	if err != nil {
		// the record is already gone in memory; the failed write is reported
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": deleted}})
}

func validateCreateEntry(req dto.CreateEntryRequest) map[string]any {
	details := map[string]any{}
	if strings.TrimSpace(req.TechnicianGivenName) == "" {
		details["technician_given_name"] = "required"
	}
	if strings.TrimSpace(req.TechnicianFamilyName) == "" {
		details["technician_family_name"] = "required"
	}
	if strings.TrimSpace(req.TechnicianRUT) == "" {
		details["technician_rut"] = "required"
	} else if !validation.ValidRUT(req.TechnicianRUT) {
		details["technician_rut"] = "invalid check digit"
	}
	if strings.TrimSpace(req.TechnicianCompany) == "" {
		details["technician_company"] = "required"
	}
	if req.FacilityID == "" {
		details["facility_id"] = "required"
	}
	if req.RoomID == "" {
		details["room_id"] = "required"
	}
	if req.TicketType == "" {
		details["ticket_type"] = "required"
	}
	if strings.TrimSpace(req.TicketNumber) == "" {
		details["ticket_number"] = "required"
	}
	if strings.TrimSpace(req.Purpose) == "" {
		details["purpose"] = "required"
	}
	return details
}

func parseCriteria(c *fiber.Ctx) (query.Criteria, error) {
	criteria := query.Criteria{
		FacilityID:     c.Query("facility_id"),
		RoomID:         c.Query("room_id"),
		TicketType:     domain.TicketType(c.Query("ticket_type")),
		Status:         domain.EntryStatus(c.Query("status")),
		Company:        c.Query("company"),
		TechnicianName: c.Query("technician"),
		Responsible:    c.Query("responsible"),
		QuickSearch:    c.Query("q"),
		ReportSearch:   c.Query("search"),
	}
	if raw := c.Query("date_from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return query.Criteria{}, util.NewValidationError("invalid date_from", map[string]any{"date_from": raw})
		}
		criteria.DateFrom = &parsed
	}
	if raw := c.Query("date_to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return query.Criteria{}, util.NewValidationError("invalid date_to", map[string]any{"date_to": raw})
		}
		criteria.DateTo = &parsed
	}
	return criteria, nil
}
