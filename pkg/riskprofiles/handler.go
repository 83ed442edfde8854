package riskprofiles

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roboadvisor/pkg/portfolios"
	"roboadvisor/pkg/response"
)

type RiskProfileHandler struct {
	service RiskProfileService
}

func NewRiskProfileHandler(service RiskProfileService) *RiskProfileHandler {
	return &RiskProfileHandler{service: service}
}

func (h *RiskProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/risk-profiles", h.createRiskProfile)
	rg.GET("/portfolios/:id/risk-profile", h.getRiskProfile)
	rg.PUT("/portfolios/:id/risk-profile", h.updateRiskProfile)
	rg.DELETE("/portfolios/:id/risk-profile", h.deleteRiskProfile)
}

type createRiskProfileRequest struct {
	PortfolioID int64 `json:"portfolio_id" binding:"required"`
	RiskScore   int   `json:"risk_score" binding:"required"`
}

type updateRiskProfileRequest struct {
	RiskScore int `json:"risk_score" binding:"required"`
}

// @Summary      Create a risk profile
// @Description  Creates the risk profile for a portfolio; each portfolio has at most one
// @Tags         risk-profiles
// @Accept       json
// @Produce      json
// @Param        request body createRiskProfileRequest true "Risk profile creation request"
// @Success      201  {object}  response.APIResponse{data=RiskProfile} "Risk profile created successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      404  {object}  response.APIResponse "Referenced portfolio not found"
// @Failure      409  {object}  response.APIResponse "Portfolio already has a risk profile"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/risk-profiles [post]
func (h *RiskProfileHandler) createRiskProfile(c *gin.Context) {
	var req createRiskProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	profile, err := h.service.CreateRiskProfile(c.Request.Context(), RiskProfile{
		PortfolioID: req.PortfolioID,
		RiskScore:   req.RiskScore,
	})
	if err != nil {
		switch {
		case errors.Is(err, portfolios.ErrPortfolioNotFound):
			response.SendAPIError(c, http.StatusNotFound, "portfolio not found")
		case errors.Is(err, ErrRiskProfileExists):
			response.SendAPIError(c, http.StatusConflict, "risk profile already exists for portfolio")
		default:
			response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "risk profile created", profile)
}

// @Summary      Get a portfolio's risk profile
// @Tags         risk-profiles
// @Produce      json
// @Param        id   path      int  true  "Portfolio ID"
// @Success      200  {object}  response.APIResponse{data=RiskProfile} "Risk profile retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid portfolio ID"
// @Failure      404  {object}  response.APIResponse "Risk profile not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios/{id}/risk-profile [get]
func (h *RiskProfileHandler) getRiskProfile(c *gin.Context) {
	portfolioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || portfolioID <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid portfolio id")
		return
	}

	profile, err := h.service.GetRiskProfileByPortfolioID(c.Request.Context(), portfolioID)
	if err != nil {
		if errors.Is(err, ErrRiskProfileNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "risk profile not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "risk profile fetched", profile)
}

// @Summary      Update a portfolio's risk profile
// @Tags         risk-profiles
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Portfolio ID"
// @Param        request body updateRiskProfileRequest true "Risk profile update request"
// @Success      200  {object}  response.APIResponse{data=RiskProfile} "Risk profile updated successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      404  {object}  response.APIResponse "Risk profile not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios/{id}/risk-profile [put]
func (h *RiskProfileHandler) updateRiskProfile(c *gin.Context) {
	portfolioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || portfolioID <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid portfolio id")
		return
	}

	var req updateRiskProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	profile, err := h.service.UpdateRiskProfileByPortfolioID(c.Request.Context(), portfolioID, req.RiskScore)
	if err != nil {
		if errors.Is(err, ErrRiskProfileNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "risk profile not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "risk profile updated", profile)
}

// @Summary      Delete a portfolio's risk profile
// @Tags         risk-profiles
// @Produce      json
// @Param        id   path      int  true  "Portfolio ID"
// @Success      200  {object}  response.APIResponse "Risk profile deleted successfully"
// @Failure      400  {object}  response.APIResponse "Invalid portfolio ID"
// @Failure      404  {object}  response.APIResponse "Risk profile not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios/{id}/risk-profile [delete]
func (h *RiskProfileHandler) deleteRiskProfile(c *gin.Context) {
	portfolioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || portfolioID <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid portfolio id")
		return
	}

	if err := h.service.DeleteRiskProfileByPortfolioID(c.Request.Context(), portfolioID); err != nil {
		if errors.Is(err, ErrRiskProfileNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "risk profile not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "risk profile deleted", nil)
}
