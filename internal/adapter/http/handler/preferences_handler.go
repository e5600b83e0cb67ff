package handler

import (
	"strings"

	"p2p-offerbook/internal/adapter/http/dto"
	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
	"p2p-offerbook/pkg/apperror"
	"p2p-offerbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// PreferencesHandler reads and updates the offer book related preferences.
// Every change reaches the views through the store's listeners.
type PreferencesHandler struct {
	prefs   ports.PreferenceStore
	catalog ports.CurrencyCatalog
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(prefs ports.PreferenceStore, catalog ports.CurrencyCatalog) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs, catalog: catalog}
}

// Get handles GET /api/v1/preferences.
func (h *PreferencesHandler) Get(c *gin.Context) {
	response.OK(c, h.prefs.Preferences())
}

// Patch handles PATCH /api/v1/preferences. The patch is validated as a whole
// before any field is applied.
func (h *PreferencesHandler) Patch(c *gin.Context) {
	var req dto.PreferencesPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var tracked []domain.TradeCurrency
	if req.TradeCurrencies != nil {
		seen := make(map[string]bool, len(req.TradeCurrencies))
		for _, code := range req.TradeCurrencies {
			code = strings.ToUpper(code)
			tc, ok := h.catalog.Lookup(code)
			if !ok {
				response.Error(c, apperror.ErrInvalidPreference("unknown trade currency: "+code))
				return
			}
			if seen[code] {
				continue
			}
			seen[code] = true
			tracked = append(tracked, tc)
		}
		if len(tracked) == 0 {
			response.Error(c, apperror.ErrInvalidPreference("at least one trade currency is required"))
			return
		}
	}

	if req.UseStickyMarketPrice != nil {
		h.prefs.SetUseStickyMarketPrice(*req.UseStickyMarketPrice)
	}
	if req.ShowOwnOffersInOfferBook != nil {
		h.prefs.SetShowOwnOffersInOfferBook(*req.ShowOwnOffersInOfferBook)
	}
	if req.IgnoreTradersList != nil {
		h.prefs.SetIgnoreTradersList(req.IgnoreTradersList)
	}
	if tracked != nil {
		h.prefs.SetTradeCurrencies(tracked)
	}

	response.OK(c, h.prefs.Preferences())
}
