package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_TransferSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	userID := uuid.New()

	var captured *domain.AuditLog
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			captured = entry
		},
	)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxUserID, userID); c.Next() })
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/transfers", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, domain.AuditActionTransfer, captured.Action)
	assert.Equal(t, "transfer", captured.ResourceType)
	require.NotNil(t, captured.UserID)
	assert.Equal(t, userID, *captured.UserID)
	assert.Contains(t, captured.Details, `"status":201`)
}

func TestAuditLog_ResourceIDFromPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	walletID := uuid.New().String()

	var captured *domain.AuditLog
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			captured = entry
		},
	)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.PUT("/api/v1/wallets/:id/currency", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/wallets/"+walletID+"/currency", nil))

	require.NotNil(t, captured)
	assert.Equal(t, domain.AuditActionChangeCurrency, captured.Action)
	assert.Equal(t, walletID, captured.ResourceID)
	assert.Nil(t, captured.UserID)
}

func TestAuditLog_SkipsGET(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.GET("/api/v1/wallets", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wallets", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/transfers", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error_code": "WAL_002"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuditLog_SkipsUnmappedRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/wallets/merge/preview", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/wallets/merge/preview", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMapRouteToAction(t *testing.T) {
	tests := []struct {
		route    string
		method   string
		action   domain.AuditAction
		resource string
	}{
		{"/api/v1/wallets", http.MethodPost, domain.AuditActionCreateWallet, "wallet"},
		{"/api/v1/wallets/:id", http.MethodDelete, domain.AuditActionDeleteWallet, "wallet"},
		{"/api/v1/wallets/:id/default", http.MethodPut, domain.AuditActionSetDefault, "wallet"},
		{"/api/v1/wallets/merge", http.MethodPost, domain.AuditActionMergeWallets, "wallet"},
		{"/api/v1/transfers/:id", http.MethodPatch, domain.AuditActionEditTransfer, "transfer"},
		{"/api/v1/transfers/:id", http.MethodDelete, domain.AuditActionDeleteTransfer, "transfer"},
		{"/api/v1/transfers/:id", http.MethodPut, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			action, resource := mapRouteToAction(tt.route, tt.method)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.resource, resource)
		})
	}
}
