package handler

import (
	"p2p-offerbook/internal/adapter/http/dto"
	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
	"p2p-offerbook/pkg/apperror"
	"p2p-offerbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// OfferBookHandler serves the BUY and SELL offer book views.
type OfferBookHandler struct {
	book ports.OfferBook
	hub  *StreamHub
}

// NewOfferBookHandler creates a new OfferBookHandler. hub may be nil, in
// which case the stream endpoint is unavailable.
func NewOfferBookHandler(book ports.OfferBook, hub *StreamHub) *OfferBookHandler {
	return &OfferBookHandler{book: book, hub: hub}
}

// GetOffers handles GET /api/v1/offerbook/:direction/offers.
func (h *OfferBookHandler) GetOffers(c *gin.Context) {
	dir, ok := directionParam(c)
	if !ok {
		return
	}

	rows, err := h.book.Rows(dir)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.OfferRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toOfferRowResponse(r))
	}
	response.OK(c, out)
}

// GetState handles GET /api/v1/offerbook/:direction/state.
func (h *OfferBookHandler) GetState(c *gin.Context) {
	dir, ok := directionParam(c)
	if !ok {
		return
	}

	state, err := h.book.State(dir)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toViewStateResponse(*state))
}

// GetCurrencies handles GET /api/v1/offerbook/:direction/currencies.
func (h *OfferBookHandler) GetCurrencies(c *gin.Context) {
	dir, ok := directionParam(c)
	if !ok {
		return
	}

	list, err := h.book.TradeCurrencies(dir)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.CurrencyEntry, 0, len(list))
	for _, sel := range list {
		out = append(out, toCurrencyEntry(sel))
	}
	response.OK(c, out)
}

// GetPaymentMethods handles GET /api/v1/payment-methods.
func (h *OfferBookHandler) GetPaymentMethods(c *gin.Context) {
	list := h.book.PaymentMethods()
	out := make([]dto.PaymentMethodEntry, 0, len(list))
	for _, sel := range list {
		out = append(out, toPaymentMethodEntry(sel))
	}
	response.OK(c, out)
}

// SelectCurrency handles PUT /api/v1/offerbook/:direction/currency.
// Choosing the edit entry leaves the view unchanged and answers 202 with a
// navigation hint.
func (h *OfferBookHandler) SelectCurrency(c *gin.Context) {
	dir, ok := directionParam(c)
	if !ok {
		return
	}

	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.book.SelectCurrency(dir, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := toViewStateResponse(result.State)
	if result.NavigateTo != "" {
		resp.NavigateTo = result.NavigateTo
		response.Accepted(c, resp)
		return
	}
	response.OK(c, resp)
}

// SelectPaymentMethod handles PUT /api/v1/offerbook/:direction/payment-method.
func (h *OfferBookHandler) SelectPaymentMethod(c *gin.Context) {
	dir, ok := directionParam(c)
	if !ok {
		return
	}

	var req dto.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	state, err := h.book.SelectPaymentMethod(dir, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toViewStateResponse(*state))
}

// SetTab handles PUT /api/v1/offerbook/:direction/tab.
func (h *OfferBookHandler) SetTab(c *gin.Context) {
	dir, ok := directionParam(c)
	if !ok {
		return
	}

	var req dto.TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	state, err := h.book.SetTabSelected(dir, *req.Selected)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toViewStateResponse(*state))
}

// RemoveOffer handles DELETE /api/v1/offers/:id.
func (h *OfferBookHandler) RemoveOffer(c *gin.Context) {
	id := c.Param("id")
	if !validOfferID(id) {
		response.Error(c, apperror.Validation("invalid offer id"))
		return
	}

	if err := h.book.RemoveOffer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Stream handles GET /api/v1/offerbook/:direction/stream (websocket).
func (h *OfferBookHandler) Stream(c *gin.Context) {
	if h.hub == nil {
		response.Error(c, apperror.ErrStreamingDisabled())
		return
	}
	dir, ok := directionParam(c)
	if !ok {
		return
	}
	h.hub.Serve(c.Writer, c.Request, dir, h.book)
}

// directionParam parses the :direction path segment, answering 400 when it
// is neither BUY nor SELL.
func directionParam(c *gin.Context) (domain.Direction, bool) {
	raw := c.Param("direction")
	dir, err := domain.ParseDirection(raw)
	if err != nil {
		response.Error(c, apperror.ErrUnknownDirection(raw))
		return "", false
	}
	return dir, true
}

func validOfferID(id string) bool {
	if id == "" || len(id) > 128 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
