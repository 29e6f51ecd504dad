package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mcordovar/datacenter-access/internal/observability"
	"github.com/mcordovar/datacenter-access/internal/query"
	"github.com/mcordovar/datacenter-access/internal/registry"
)

// StatsHandler serves dashboard statistics and debug metrics.
type StatsHandler struct {
	store   *registry.Store
	metrics *observability.Metrics
}

// NewStatsHandler constructs handler.
func NewStatsHandler(store *registry.Store, metrics *observability.Metrics) *StatsHandler {
	return &StatsHandler{store: store, metrics: metrics}
}

// Dashboard GET /stats/dashboard.
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats := query.ComputeStatistics(h.store.Records(), h.store.Facilities(), time.Now())
	return c.JSON(fiber.Map{"data": stats})
}

// Metrics GET /stats/metrics.
func (h *StatsHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{"data": fiber.Map{
		"requests": requests,
		"errors":   errors,
	}})
}
