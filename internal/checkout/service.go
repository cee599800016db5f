package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/ledger"
	"go.uber.org/zap"
)

const (
	DefaultDeliveryDays = 4
	cardPayment         = "카드 결제"
	publishTimeout      = 5 * time.Second
)

type Shipping struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DefaultShipping is the mock recipient shown on the confirmation screen
var DefaultShipping = Shipping{
	Name:    "홍길동",
	Phone:   "010-1234-5678",
	Address: "서울특별시 강남구 테헤란로 123",
}

type Config struct {
	Shipping     Shipping
	DeliveryDays int
}

// Confirmation is the order-confirm screen: what will be bought, where it goes and what it costs.
type Confirmation struct {
	Items    []domain.OrderItem `json:"items"`
	Shipping Shipping           `json:"shipping"`
	Total    int64              `json:"total"`
}

type CheckoutService interface {
	Confirm(ctx context.Context, entries []domain.LineItem) (*Confirmation, error)
	Place(ctx context.Context, sessionID string, entries []domain.LineItem) (*domain.OrderSummary, error)
}

type Service struct {
	cfg       Config
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(cfg Config, publisher Publisher, logger *zap.Logger) *Service {
	if cfg.DeliveryDays <= 0 {
		cfg.DeliveryDays = DefaultDeliveryDays
	}
	if cfg.Shipping == (Shipping{}) {
		cfg.Shipping = DefaultShipping
	}
	return &Service{
		cfg:       cfg,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) Confirm(_ context.Context, entries []domain.LineItem) (*Confirmation, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	return &Confirmation{
		Items:    orderItems(entries),
		Shipping: s.cfg.Shipping,
		Total:    ledger.ComputeTotal(entries),
	}, nil
}

// Place charges the (stubbed) payment and returns the order summary. The
// order-placed event is published best effort; a failed publish is logged and
// the order still succeeds. The caller's ledger is left untouched.
func (s *Service) Place(ctx context.Context, sessionID string, entries []domain.LineItem) (*domain.OrderSummary, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	total := ledger.ComputeTotal(entries)
	payMethod, err := chargeStub(ctx, total)
	if err != nil {
		return nil, fmt.Errorf("failed to charge: %w", err)
	}

	placedAt := s.now()
	summary := &domain.OrderSummary{
		OrderID:   fmt.Sprintf("OC-%d", placedAt.UnixMilli()),
		AmountKRW: total,
		PayMethod: payMethod,
		Address:   s.cfg.Shipping.Address,
		ETAText:   FormatKoreanDate(placedAt.AddDate(0, 0, s.cfg.DeliveryDays)),
		Items:     orderItems(entries),
		PlacedAt:  placedAt,
	}

	s.publish(ctx, sessionID, summary)

	s.logger.Info("order placed",
		zap.String("order_id", summary.OrderID),
		zap.String("session_id", sessionID),
		zap.Int64("amount_krw", total),
		zap.Int("lines", len(entries)))
	return summary, nil
}

func (s *Service) publish(ctx context.Context, sessionID string, summary *domain.OrderSummary) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := OrderPlacedEvent{
		OrderID:     summary.OrderID,
		SessionID:   sessionID,
		Items:       summary.Items,
		TotalAmount: summary.AmountKRW,
		Currency:    "KRW",
		PlacedAt:    summary.PlacedAt,
	}
	if err := s.publisher.PublishOrderPlaced(pubCtx, event); err != nil {
		s.logger.Warn("failed to publish order placed event",
			zap.String("order_id", summary.OrderID),
			zap.Error(err))
	}
}

// chargeStub approves every payment
func chargeStub(_ context.Context, amount int64) (string, error) {
	if amount < 0 {
		return "", ErrPaymentDeclined
	}
	return cardPayment, nil
}

func orderItems(entries []domain.LineItem) []domain.OrderItem {
	items := make([]domain.OrderItem, len(entries))
	for i, e := range entries {
		items[i] = domain.OrderItem{
			ProductID: e.ProductID,
			Name:      e.Name,
			Image:     e.Image,
			Color:     e.SelectedColor,
			Size:      e.SelectedSize,
			Quantity:  e.Quantity,
			UnitPrice: ledger.EffectivePrice(e),
			Subtotal:  ledger.LineTotal(e),
		}
	}
	return items
}

// FormatKoreanDate renders t as "2025년 11월 10일"
func FormatKoreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
