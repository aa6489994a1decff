package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/seed"
)

// SeedHandler expõe o seeder de demonstração. Registrado só com DEV_SEED.
type SeedHandler struct {
	seeder *seed.Seeder
}

func NewSeedHandler(seeder *seed.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

type SeedRequest struct {
	BarberID string   `json:"barber_id" binding:"required"`
	Date     string   `json:"date"`
	Start    string   `json:"start"`
	Interval int      `json:"interval_mins"`
	Slots    int      `json:"slots"`
	Pool     []string `json:"customer_pool"`
}

func (h *SeedHandler) EnsureDay(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.seeder.EnsureDay(c.Request.Context(), seed.EnsureDayInput{
		BarberID:     req.BarberID,
		Date:         req.Date,
		Start:        req.Start,
		Interval:     req.Interval,
		Slots:        req.Slots,
		CustomerPool: req.Pool,
	})
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": created})
}
