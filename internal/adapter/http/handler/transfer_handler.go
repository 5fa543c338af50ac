package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderIdempotencyKey lets clients retry a transfer without applying it twice.
const HeaderIdempotencyKey = "Idempotency-Key"

// TransferHandler handles transfer endpoints.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *TransferHandler) Transfer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	if len(c.GetHeader(HeaderIdempotencyKey)) > 128 {
		response.Error(c, apperror.Validation("idempotency key too long"))
		return
	}

	result, err := h.transferSvc.TransferMoney(c.Request.Context(), ports.TransferRequest{
		InitiatorID:    userID,
		FromWalletID:   uuid.MustParse(req.FromWalletID),
		ToWalletID:     uuid.MustParse(req.ToWalletID),
		Amount:         req.Amount,
		Currency:       req.Currency,
		Note:           req.Note,
		IdempotencyKey: c.GetHeader(HeaderIdempotencyKey),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List handles GET /api/v1/transfers.
func (h *TransferHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	transfers, err := h.transferSvc.ListTransfers(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transfers)
}

// UpdateNote handles PATCH /api/v1/transfers/:id.
func (h *TransferHandler) UpdateNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	transferID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	transfer, err := h.transferSvc.UpdateTransferNote(c.Request.Context(), userID, transferID, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transfer)
}

// Delete handles DELETE /api/v1/transfers/:id and reverses its balance effect.
func (h *TransferHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	transferID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.transferSvc.DeleteTransfer(c.Request.Context(), userID, transferID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
