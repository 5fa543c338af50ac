package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records successful ledger writes.
// Actions are resolved from the matched route, so it must run inside the router.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var userID *uuid.UUID
		if id, ok := UserID(c); ok {
			userID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       userID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/wallets" && method == http.MethodPost:
		return domain.AuditActionCreateWallet, "wallet"
	case route == "/api/v1/wallets/:id" && method == http.MethodDelete:
		return domain.AuditActionDeleteWallet, "wallet"
	case route == "/api/v1/wallets/:id/default" && method == http.MethodPut:
		return domain.AuditActionSetDefault, "wallet"
	case route == "/api/v1/wallets/:id/currency" && method == http.MethodPut:
		return domain.AuditActionChangeCurrency, "wallet"
	case route == "/api/v1/wallets/merge" && method == http.MethodPost:
		return domain.AuditActionMergeWallets, "wallet"
	case route == "/api/v1/transfers" && method == http.MethodPost:
		return domain.AuditActionTransfer, "transfer"
	case route == "/api/v1/transfers/:id" && method == http.MethodPatch:
		return domain.AuditActionEditTransfer, "transfer"
	case route == "/api/v1/transfers/:id" && method == http.MethodDelete:
		return domain.AuditActionDeleteTransfer, "transfer"
	}
	return "", ""
}
