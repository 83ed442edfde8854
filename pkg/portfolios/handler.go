package portfolios

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"roboadvisor/pkg/response"
)

type PortfolioHandler struct {
	service PortfolioService
}

func NewPortfolioHandler(service PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/portfolios", h.createPortfolio)
	rg.GET("/portfolios", h.listPortfolios)
	rg.GET("/portfolios/:id", h.getPortfolioByID)
	rg.PUT("/portfolios/:id", h.updatePortfolio)
	rg.DELETE("/portfolios/:id", h.deletePortfolio)
}

type createPortfolioRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updatePortfolioRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// @Summary      Create a new portfolio
// @Description  Creates a new investment portfolio
// @Tags         portfolios
// @Accept       json
// @Produce      json
// @Param        request body createPortfolioRequest true "Portfolio creation request"
// @Success      201  {object}  response.APIResponse{data=Portfolio} "Portfolio created successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios [post]
func (h *PortfolioHandler) createPortfolio(c *gin.Context) {
	var req createPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		response.SendAPIError(c, http.StatusBadRequest, "name must not be empty")
		return
	}

	portfolio, err := h.service.CreatePortfolio(c.Request.Context(), Portfolio{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "portfolio created", portfolio)
}

// @Summary      List all portfolios
// @Description  Retrieves all portfolios in creation order
// @Tags         portfolios
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=PortfolioList} "Portfolios retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios [get]
func (h *PortfolioHandler) listPortfolios(c *gin.Context) {
	items, err := h.service.ListPortfolios(c.Request.Context())
	if err != nil {
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	data := PortfolioList{Items: items, Total: int64(len(items))}
	response.SendAPIResponse(c, http.StatusOK, true, "portfolios listed", data)
}

// @Summary      Get portfolio by ID
// @Description  Retrieves a single portfolio by its ID
// @Tags         portfolios
// @Produce      json
// @Param        id   path      int  true  "Portfolio ID"
// @Success      200  {object}  response.APIResponse{data=Portfolio} "Portfolio retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid portfolio ID"
// @Failure      404  {object}  response.APIResponse "Portfolio not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios/{id} [get]
func (h *PortfolioHandler) getPortfolioByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid portfolio id")
		return
	}

	portfolio, err := h.service.GetPortfolioByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPortfolioNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "portfolio not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "portfolio fetched", portfolio)
}

// @Summary      Update a portfolio
// @Description  Replaces the mutable fields of an existing portfolio
// @Tags         portfolios
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Portfolio ID"
// @Param        request body updatePortfolioRequest true "Portfolio update request"
// @Success      200  {object}  response.APIResponse{data=Portfolio} "Portfolio updated successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      404  {object}  response.APIResponse "Portfolio not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios/{id} [put]
func (h *PortfolioHandler) updatePortfolio(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid portfolio id")
		return
	}

	var req updatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		response.SendAPIError(c, http.StatusBadRequest, "name must not be empty")
		return
	}

	portfolio, err := h.service.UpdatePortfolio(c.Request.Context(), Portfolio{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, ErrPortfolioNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "portfolio not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "portfolio updated", portfolio)
}

// @Summary      Delete a portfolio
// @Description  Deletes a portfolio and all assets it owns
// @Tags         portfolios
// @Produce      json
// @Param        id   path      int  true  "Portfolio ID"
// @Success      200  {object}  response.APIResponse "Portfolio deleted successfully"
// @Failure      400  {object}  response.APIResponse "Invalid portfolio ID"
// @Failure      404  {object}  response.APIResponse "Portfolio not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/portfolios/{id} [delete]
func (h *PortfolioHandler) deletePortfolio(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid portfolio id")
		return
	}

	if err := h.service.DeletePortfolio(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPortfolioNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "portfolio not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "portfolio deleted", nil)
}
