package assets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"roboadvisor/pkg/portfolios"
	"roboadvisor/pkg/response"
)

type AssetHandler struct {
	service AssetService
}

func NewAssetHandler(service AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

func (h *AssetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assets", h.createAsset)
	rg.GET("/assets", h.listAssets)
	rg.GET("/assets/:id", h.getAssetByID)
	rg.PUT("/assets/:id", h.updateAsset)
	rg.DELETE("/assets/:id", h.deleteAsset)
}

type createAssetRequest struct {
	PortfolioID   int64           `json:"portfolio_id" binding:"required"`
	Symbol        string          `json:"symbol" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required"`
}

type updateAssetRequest struct {
	Symbol        string          `json:"symbol" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required"`
}

// @Summary      Create a new asset
// @Description  Creates a holding inside an existing portfolio
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body createAssetRequest true "Asset creation request"
// @Success      201  {object}  response.APIResponse{data=Asset} "Asset created successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      404  {object}  response.APIResponse "Referenced portfolio not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/assets [post]
func (h *AssetHandler) createAsset(c *gin.Context) {
	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	asset, err := h.service.CreateAsset(c.Request.Context(), Asset{
		PortfolioID:   req.PortfolioID,
		Symbol:        req.Symbol,
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
	})
	if err != nil {
		if errors.Is(err, portfolios.ErrPortfolioNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "portfolio not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "asset created", asset)
}

// @Summary      List assets
// @Description  Retrieves all assets, optionally filtered by portfolio
// @Tags         assets
// @Produce      json
// @Param        portfolio_id  query     int  false  "Filter by portfolio ID"
// @Success      200  {object}  response.APIResponse{data=AssetList} "Assets retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid portfolio filter"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/assets [get]
func (h *AssetHandler) listAssets(c *gin.Context) {
	var filters AssetFilters
	if raw := c.Query("portfolio_id"); raw != "" {
		portfolioID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || portfolioID <= 0 {
			response.SendAPIError(c, http.StatusBadRequest, "invalid portfolio_id filter")
			return
		}
		filters.PortfolioID = &portfolioID
	}

	items, err := h.service.ListAssets(c.Request.Context(), filters)
	if err != nil {
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	data := AssetList{Items: items, Total: int64(len(items))}
	response.SendAPIResponse(c, http.StatusOK, true, "assets listed", data)
}

// @Summary      Get asset by ID
// @Description  Retrieves a single asset by its ID
// @Tags         assets
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Success      200  {object}  response.APIResponse{data=Asset} "Asset retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid asset ID"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/assets/{id} [get]
func (h *AssetHandler) getAssetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.service.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "asset not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "asset fetched", asset)
}

// @Summary      Update an asset
// @Description  Replaces the mutable fields of an existing asset; the owning portfolio cannot change
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Param        request body updateAssetRequest true "Asset update request"
// @Success      200  {object}  response.APIResponse{data=Asset} "Asset updated successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/assets/{id} [put]
func (h *AssetHandler) updateAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	var req updateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	asset, err := h.service.UpdateAsset(c.Request.Context(), Asset{
		ID:            id,
		Symbol:        req.Symbol,
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
	})
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "asset not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "asset updated", asset)
}

// @Summary      Delete an asset
// @Description  Deletes an asset by ID
// @Tags         assets
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Success      200  {object}  response.APIResponse "Asset deleted successfully"
// @Failure      400  {object}  response.APIResponse "Invalid asset ID"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/assets/{id} [delete]
func (h *AssetHandler) deleteAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := h.service.DeleteAsset(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "asset not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "asset deleted", nil)
}
