package trades

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"roboadvisor/pkg/assets"
	"roboadvisor/pkg/response"
)

type TradeHandler struct {
	service TradeService
}

func NewTradeHandler(service TradeService) *TradeHandler {
	return &TradeHandler{service: service}
}

func isValidTradeType(tradeType string) bool {
	if tradeType == "" {
		return true
	}
	switch tradeType {
	case "BUY", "SELL", "DIVIDEND":
		return true
	default:
		return false
	}
}

func (h *TradeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/trades", h.createTrade)
	rg.GET("/trades", h.listTrades)
	rg.GET("/trades/:id", h.getTradeByID)
	rg.PUT("/trades/:id", h.updateTrade)
	rg.DELETE("/trades/:id", h.deleteTrade)
}

type createTradeRequest struct {
	AssetID   int64           `json:"asset_id" binding:"required"`
	TradeDate time.Time       `json:"trade_date" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	TradeType string          `json:"trade_type"`
}

type updateTradeRequest struct {
	TradeDate time.Time       `json:"trade_date" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	TradeType string          `json:"trade_type"`
}

// @Summary      Record a trade
// @Description  Records a buy/sell/dividend transaction against an existing asset
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        request body createTradeRequest true "Trade creation request"
// @Success      201  {object}  response.APIResponse{data=Trade} "Trade recorded successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      404  {object}  response.APIResponse "Referenced asset not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/trades [post]
func (h *TradeHandler) createTrade(c *gin.Context) {
	var req createTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if !isValidTradeType(req.TradeType) {
		response.SendAPIError(c, http.StatusBadRequest, "invalid trade type")
		return
	}

	trade, err := h.service.CreateTrade(c.Request.Context(), Trade{
		AssetID:   req.AssetID,
		TradeDate: req.TradeDate,
		Quantity:  req.Quantity,
		Price:     req.Price,
		TradeType: req.TradeType,
	})
	if err != nil {
		if errors.Is(err, assets.ErrAssetNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "asset not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "trade recorded", trade)
}

// @Summary      List trades
// @Description  Retrieves all trades, optionally filtered by asset
// @Tags         trades
// @Produce      json
// @Param        asset_id  query     int  false  "Filter by asset ID"
// @Success      200  {object}  response.APIResponse{data=TradeList} "Trades retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid asset filter"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/trades [get]
func (h *TradeHandler) listTrades(c *gin.Context) {
	var filters TradeFilters
	if raw := c.Query("asset_id"); raw != "" {
		assetID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || assetID <= 0 {
			response.SendAPIError(c, http.StatusBadRequest, "invalid asset_id filter")
			return
		}
		filters.AssetID = &assetID
	}

	items, err := h.service.ListTrades(c.Request.Context(), filters)
	if err != nil {
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	data := TradeList{Items: items, Total: int64(len(items))}
	response.SendAPIResponse(c, http.StatusOK, true, "trades listed", data)
}

// @Summary      Get trade by ID
// @Tags         trades
// @Produce      json
// @Param        id   path      int  true  "Trade ID"
// @Success      200  {object}  response.APIResponse{data=Trade} "Trade retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid trade ID"
// @Failure      404  {object}  response.APIResponse "Trade not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/trades/{id} [get]
func (h *TradeHandler) getTradeByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid trade id")
		return
	}

	trade, err := h.service.GetTradeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTradeNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "trade not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "trade fetched", trade)
}

// @Summary      Update a trade
// @Description  Replaces the mutable fields of an existing trade; the asset cannot change
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Trade ID"
// @Param        request body updateTradeRequest true "Trade update request"
// @Success      200  {object}  response.APIResponse{data=Trade} "Trade updated successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      404  {object}  response.APIResponse "Trade not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/trades/{id} [put]
func (h *TradeHandler) updateTrade(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid trade id")
		return
	}

	var req updateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if !isValidTradeType(req.TradeType) {
		response.SendAPIError(c, http.StatusBadRequest, "invalid trade type")
		return
	}

	trade, err := h.service.UpdateTrade(c.Request.Context(), Trade{
		ID:        id,
		TradeDate: req.TradeDate,
		Quantity:  req.Quantity,
		Price:     req.Price,
		TradeType: req.TradeType,
	})
	if err != nil {
		if errors.Is(err, ErrTradeNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "trade not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "trade updated", trade)
}

// @Summary      Delete a trade
// @Tags         trades
// @Produce      json
// @Param        id   path      int  true  "Trade ID"
// @Success      200  {object}  response.APIResponse "Trade deleted successfully"
// @Failure      400  {object}  response.APIResponse "Invalid trade ID"
// @Failure      404  {object}  response.APIResponse "Trade not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /api/v1/trades/{id} [delete]
func (h *TradeHandler) deleteTrade(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIError(c, http.StatusBadRequest, "invalid trade id")
		return
	}

	if err := h.service.DeleteTrade(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTradeNotFound) {
			response.SendAPIError(c, http.StatusNotFound, "trade not found")
			return
		}
		response.SendAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "trade deleted", nil)
}
