package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/dto"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
	"github.com/SscSPs/remittance_pricing/internal/utils/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderService struct {
	BaseService
	pairRepo     portsrepo.CurrencyPairReader
	priorityRepo portsrepo.PriorityReader
	orderRepo    portsrepo.OrderRepositoryFacade
	pricing      portssvc.OrderPricingSvc
	settings     portssvc.PricingSettings
	publisher    portssvc.OrderEventPublisher
	metrics      *metrics.PricingMetrics
	now          func() time.Time
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithOrderEventPublisher sets where priced orders are announced.
func WithOrderEventPublisher(p portssvc.OrderEventPublisher) OrderServiceOption {
	return func(s *orderService) {
		s.publisher = p
	}
}

// WithOrderMetrics sets the metrics orders are counted in.
func WithOrderMetrics(m *metrics.PricingMetrics) OrderServiceOption {
	return func(s *orderService) {
		s.metrics = m
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

func NewOrderService(
	pairRepo portsrepo.CurrencyPairReader,
	priorityRepo portsrepo.PriorityReader,
	orderRepo portsrepo.OrderRepositoryFacade,
	pricingSvc portssvc.OrderPricingSvc,
	settings portssvc.PricingSettings,
	options ...OrderServiceOption,
) portssvc.OrderSvcFacade {
	s := &orderService{
		pairRepo:     pairRepo,
		priorityRepo: priorityRepo,
		orderRepo:    orderRepo,
		pricing:      pricingSvc,
		settings:     settings,
		now:          time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// CreateOrder runs the pricing pipeline: validate the quoted rate, compute
// costs, value the payment in USD, persist. A stale rate is terminal for the
// submission; the client has to request a new quote.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actor portssvc.Actor) (*domain.Order, error) {
	logger := s.GetLogger(ctx).With(slog.Int64("pair_id", req.PairID), slog.String("user_id", actor.UserID))

	if !req.PaymentAmount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}
	if !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("rate must be positive")
	}

	pair, err := s.pairRepo.FindPairByID(ctx, req.PairID)
	if err != nil {
		return nil, err
	}

	priority, err := s.priorityRepo.FindPriorityByID(ctx, req.PriorityID)
	if err != nil {
		return nil, err
	}

	if !s.pricing.ValidateRate(ctx, *pair, req.Rate, actor.AccountType) {
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity,
			"the rate has changed, please request a new quote", apperrors.ErrStaleQuote)
	}

	transactionPct, err := s.settings.TransactionCostPct(ctx)
	if err != nil {
		logger.Error("Failed to read transaction cost setting", slog.String("error", err.Error()))
		return nil, err
	}
	taxPct, err := s.settings.TaxPct(ctx)
	if err != nil {
		logger.Error("Failed to read tax setting", slog.String("error", err.Error()))
		return nil, err
	}

	costs := pricing.CalculateCosts(req.PaymentAmount, transactionPct, taxPct, priority.CostPct)

	usdAmount, err := s.pricing.ConvertAmountToUSD(ctx, pair.BaseSymbol, req.PaymentAmount)
	if err != nil {
		logger.Error("Failed to value order in USD", slog.String("error", err.Error()))
		return nil, err
	}

	order := domain.Order{
		OrderID:         uuid.NewString(),
		UserID:          actor.UserID,
		AccountType:     actor.AccountType,
		PairID:          pair.PairID,
		PriorityID:      priority.PriorityID,
		PaymentAmount:   req.PaymentAmount,
		Rate:            req.Rate,
		SendedAmount:    costs.AmountToSend,
		ReceivedAmount:  amountToReceive(*pair, costs.AmountToSend, req.Rate),
		USDAmount:       usdAmount,
		TransactionCost: costs.TransactionCost,
		PriorityCost:    costs.PriorityCost,
		Tax:             costs.TaxCost,
		TaxPct:          taxPct,
		TotalCost:       costs.TotalCost,
		CreatedAt:       s.now().UTC(),
	}

	stored, err := s.orderRepo.SaveOrder(ctx, order)
	if err != nil {
		logger.Error("Failed to save order in repository", slog.String("error", err.Error()))
		return nil, err
	}
	s.metrics.IncOrderCreated(pair.Name)

	if s.publisher != nil {
		// The order is already stored; a lost event must not fail the request.
		if err := s.publisher.PublishOrderPriced(ctx, *stored); err != nil {
			logger.Warn("Failed to publish order event", slog.String("order_id", stored.OrderID), slog.String("error", err.Error()))
		}
	}

	logger.Info("Order priced and created", slog.String("order_id", stored.OrderID))
	return stored, nil
}

// GetOrder returns an order owned by the actor. Orders of other users are
// reported as not found.
func (s *orderService) GetOrder(ctx context.Context, orderID string, actor portssvc.Actor) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		}
		return nil, err
	}

	if order.UserID != actor.UserID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}
	return order, nil
}

// amountToReceive applies the client rate. Inverse pairs are quoted
// quote-per-base, so the net amount is divided instead.
func amountToReceive(pair domain.CurrencyPair, amountToSend, rate decimal.Decimal) decimal.Decimal {
	if pair.ShowInverse {
		return amountToSend.Div(rate)
	}
	return pricing.CalculateAmountToReceive(amountToSend, rate)
}
