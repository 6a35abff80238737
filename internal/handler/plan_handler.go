package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caribtel/storefront-api/internal/service"
	"github.com/caribtel/storefront-api/internal/utils"
)

// PlanHandler handles the plan catalog and bundle quote endpoints.
type PlanHandler struct {
	planService *service.PlanService
}

// NewPlanHandler constructs a PlanHandler.
func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetPlans returns the full postpaid and prepaid catalogs.
func (h *PlanHandler) GetPlans(c *gin.Context) {
	utils.Success(c, 200, "Plans retrieved successfully", gin.H{
		"postpaid": h.planService.PostpaidPlans(),
		"prepaid":  h.planService.PrepaidBundles(),
	})
}

// GetFeaturedPlans returns the home page highlights.
func (h *PlanHandler) GetFeaturedPlans(c *gin.Context) {
	utils.Success(c, 200, "Featured plans retrieved successfully", gin.H{
		"plans": h.planService.FeaturedPlans(),
	})
}

// GetBundleQuote returns the financing breakdown for a plan plus device price.
// GET /v1/plans/:id/bundle-quote?devicePrice=680
func (h *PlanHandler) GetBundleQuote(c *gin.Context) {
	planID := c.Param("id")

	devicePrice := 0.0
	if v := c.Query("devicePrice"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.Error(c, 400, "VALIDATION_FAILED", "devicePrice must be a number")
			return
		}
		devicePrice = parsed
	}

	quote, err := h.planService.QuoteBundle(planID, devicePrice)
	if err != nil {
		if errors.Is(err, utils.ErrPlanNotFound) {
			utils.Error(c, 404, "PLAN_NOT_FOUND", "Plan not found")
			return
		}
		utils.Error(c, 400, "VALIDATION_FAILED", "devicePrice must not be negative")
		return
	}

	utils.Success(c, 200, "Bundle quote computed successfully", gin.H{
		"quote": quote,
	})
}
