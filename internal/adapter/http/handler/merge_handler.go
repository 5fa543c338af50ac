package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MergeHandler handles wallet merge endpoints.
type MergeHandler struct {
	mergeSvc ports.MergeService
}

// NewMergeHandler creates a new MergeHandler.
func NewMergeHandler(mergeSvc ports.MergeService) *MergeHandler {
	return &MergeHandler{mergeSvc: mergeSvc}
}

func (h *MergeHandler) bind(c *gin.Context) (ports.MergeRequest, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return ports.MergeRequest{}, false
	}
	var req dto.MergeRequest
	if !bindJSON(c, &req) {
		return ports.MergeRequest{}, false
	}
	return ports.MergeRequest{
		UserID:            userID,
		SourceWalletID:    uuid.MustParse(req.SourceWalletID),
		TargetWalletID:    uuid.MustParse(req.TargetWalletID),
		TargetCurrency:    req.TargetCurrency,
		MakeTargetDefault: req.MakeTargetDefault,
	}, true
}

// Preview handles POST /api/v1/wallets/merge/preview.
func (h *MergeHandler) Preview(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	preview, err := h.mergeSvc.PreviewMerge(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, preview)
}

// Merge handles POST /api/v1/wallets/merge.
func (h *MergeHandler) Merge(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.mergeSvc.MergeWallets(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// History handles GET /api/v1/wallets/merge/history.
func (h *MergeHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	history, err := h.mergeSvc.MergeHistory(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, history)
}
