package pricing

import (
	"fmt"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// pct returns amount * percentage / 100 without rounding.
func pct(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Shift(-2)
}

// CalculateCosts splits a gross payment amount into fees, tax and the net
// amount that is actually converted. The amount is not validated here; callers
// gate on positivity before pricing an order.
func CalculateCosts(paymentAmount, transactionPct, taxPct, priorityPct decimal.Decimal) domain.CostBreakdown {
	transactionCost := pct(paymentAmount, transactionPct)
	priorityCost := pct(paymentAmount, priorityPct)
	totalCost := transactionCost.Add(priorityCost)
	taxCost := pct(totalCost, taxPct)

	return domain.CostBreakdown{
		TransactionCost: transactionCost,
		PriorityCost:    priorityCost,
		TaxCost:         taxCost,
		TotalCost:       totalCost,
		AmountToSend:    paymentAmount.Sub(totalCost).Sub(taxCost),
	}
}

// CalculateAmountToReceive converts the net amount with the given rate.
func CalculateAmountToReceive(amountToSend, rate decimal.Decimal) decimal.Decimal {
	return amountToSend.Mul(rate)
}

// ApplyMarkup turns a raw provider rate into the three tier bids of a pair.
//
//	point:      bid = r + offset * minPipValue
//	percentage: bid = r * (1 + offset/100)
func ApplyMarkup(raw decimal.Decimal, pair domain.CurrencyPair) (domain.Bids, error) {
	var apply func(offset decimal.Decimal) decimal.Decimal

	switch pair.OffsetMode {
	case domain.OffsetModePoint:
		apply = func(offset decimal.Decimal) decimal.Decimal {
			return raw.Add(offset.Mul(pair.MinPipValue))
		}
	case domain.OffsetModePercentage:
		one := decimal.NewFromInt(1)
		apply = func(offset decimal.Decimal) decimal.Decimal {
			return raw.Mul(one.Add(offset.Shift(-2)))
		}
	default:
		return domain.Bids{}, fmt.Errorf("%w: unknown offset mode %q for pair %s", apperrors.ErrValidation, pair.OffsetMode, pair.Name)
	}

	return domain.Bids{
		Bid:          apply(pair.Offset),
		BidToCorps:   apply(pair.OffsetToCorps),
		BidToImports: apply(pair.OffsetToImports),
	}, nil
}

// FixedBids returns the administrator-set bids of a fixed-rate pair.
func FixedBids(pair domain.CurrencyPair) domain.Bids {
	return domain.Bids{
		Bid:          pair.FixedBid,
		BidToCorps:   pair.FixedBidToCorps,
		BidToImports: pair.FixedBidToImports,
	}
}
