package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	walletSvc   ports.WalletService
	transferSvc ports.TransferService
	mergeSvc    ports.MergeService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, transferSvc ports.TransferService, mergeSvc ports.MergeService) *WalletHandler {
	return &WalletHandler{
		walletSvc:   walletSvc,
		transferSvc: transferSvc,
		mergeSvc:    mergeSvc,
	}
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateWalletRequest
	if !bindJSON(c, &req) {
		return
	}

	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), ports.CreateWalletRequest{
		OwnerID:        userID,
		Name:           req.Name,
		Currency:       req.Currency,
		InitialBalance: req.InitialBalance,
		IsDefault:      req.IsDefault,
		Kind:           req.Kind,
		Description:    req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, wallet)
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	wallets, err := h.walletSvc.ListWallets(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallets)
}

// Get handles GET /api/v1/wallets/:id.
func (h *WalletHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.walletSvc.GetWallet(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, detail)
}

// SetDefault handles PUT /api/v1/wallets/:id/default.
func (h *WalletHandler) SetDefault(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}
	wallet, err := h.walletSvc.SetDefaultWallet(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// ChangeCurrency handles PUT /api/v1/wallets/:id/currency.
func (h *WalletHandler) ChangeCurrency(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ChangeCurrencyRequest
	if !bindJSON(c, &req) {
		return
	}

	wallet, err := h.walletSvc.ChangeCurrency(c.Request.Context(), userID, walletID, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// Delete handles DELETE /api/v1/wallets/:id.
func (h *WalletHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.walletSvc.DeleteWallet(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Transfers handles GET /api/v1/wallets/:id/transfers.
func (h *WalletHandler) Transfers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.transferSvc.WalletTransfers(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// MergeCandidates handles GET /api/v1/wallets/:id/merge-candidates.
func (h *WalletHandler) MergeCandidates(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}
	candidates, err := h.mergeSvc.MergeCandidates(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, candidates)
}
