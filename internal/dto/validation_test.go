package dto_test

import (
	"testing"

	"github.com/SscSPs/remittance_pricing/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	dto.RegisterDecimalType(v)
	return v
}

func TestCreateOrderRequest_Validation(t *testing.T) {
	v := newValidator()
	valid := dto.CreateOrderRequest{
		PairID:        1,
		PriorityID:    2,
		PaymentAmount: decimal.RequireFromString("1000"),
		Rate:          decimal.RequireFromString("36.52"),
	}

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateOrderRequest)
		wantErr bool
	}{
		{"valid", func(r *dto.CreateOrderRequest) {}, false},
		{"missing pair", func(r *dto.CreateOrderRequest) { r.PairID = 0 }, true},
		{"missing priority", func(r *dto.CreateOrderRequest) { r.PriorityID = 0 }, true},
		{"zero amount", func(r *dto.CreateOrderRequest) { r.PaymentAmount = decimal.Zero }, true},
		{"negative amount", func(r *dto.CreateOrderRequest) { r.PaymentAmount = decimal.RequireFromString("-5") }, true},
		{"zero rate", func(r *dto.CreateOrderRequest) { r.Rate = decimal.Zero }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
