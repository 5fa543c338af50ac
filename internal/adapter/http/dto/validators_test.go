package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreateWalletRequest{
		Name:     "  Travel  ",
		Currency: " eur ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Travel", req.Name)
	assert.Equal(t, "eur", req.Currency)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := UpdateTransferRequest{Note: "rent <script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Note, "&lt;script&gt;")
	assert.NotContains(t, req.Note, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	note := "  split dinner  "
	req := TransferRequest{Note: &note}
	SanitizeStruct(&req)

	assert.Equal(t, "split dinner", *req.Note)
}

func TestSanitizeStruct_IgnoresNonStruct(t *testing.T) {
	s := "  x  "
	SanitizeStruct(&s)
	assert.Equal(t, "  x  ", s)
}

// --- currency validator tests ---

func TestCurrencyValidator(t *testing.T) {
	tests := []struct {
		currency string
		valid    bool
	}{
		{"USD", true},
		{"eur", true},
		{" jpy ", true},
		{"US", false},
		{"USDT", false},
		{"U$D", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(ChangeCurrencyRequest{Currency: tt.currency})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMergeRequest_OptionalCurrency(t *testing.T) {
	req := MergeRequest{
		SourceWalletID: "7d9f2c1e-3b4a-4c5d-8e6f-1a2b3c4d5e6f",
		TargetWalletID: "0f1e2d3c-4b5a-4978-8a6b-5c4d3e2f1a0b",
	}
	assert.NoError(t, binding.Validator.ValidateStruct(req))

	req.TargetCurrency = "EURO"
	assert.Error(t, binding.Validator.ValidateStruct(req))
}
