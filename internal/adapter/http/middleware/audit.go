package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditLog logs every successful state changing request of the operator, so
// selection changes and offer withdrawals can be traced after the fact.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		event := log.Info().
			Str("action", action).
			Str("subject", c.GetString(CtxSubject)).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status())
		if dir := c.Param("direction"); dir != "" {
			event = event.Str("direction", dir)
		}
		if id := c.Param("id"); id != "" {
			event = event.Str("offer_id", id)
		}
		event.Msg("audit")
	}
}

func mapRouteToAction(route, method string) string {
	switch {
	case route == "/api/v1/offerbook/:direction/currency" && method == http.MethodPut:
		return "select_currency"
	case route == "/api/v1/offerbook/:direction/payment-method" && method == http.MethodPut:
		return "select_payment_method"
	case route == "/api/v1/offerbook/:direction/tab" && method == http.MethodPut:
		return "select_tab"
	case route == "/api/v1/offers/:id" && method == http.MethodDelete:
		return "remove_offer"
	case route == "/api/v1/preferences" && method == http.MethodPatch:
		return "update_preferences"
	}
	return ""
}
