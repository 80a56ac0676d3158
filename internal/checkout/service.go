package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/homazon/homazon-backend/internal/cart"
	"github.com/homazon/homazon-backend/internal/orders"
	"github.com/homazon/homazon-backend/internal/users"
	"github.com/homazon/homazon-backend/pkg/db/models"
	"github.com/homazon/homazon-backend/pkg/enums"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
	"github.com/homazon/homazon-backend/pkg/logger"
	"github.com/homazon/homazon-backend/pkg/metrics"
)

// Outcome labels recorded per checkout attempt.
const (
	outcomeConfirmed        = "confirmed"
	outcomeEmptyCart        = "empty_cart"
	outcomeStockUnavailable = "stock_unavailable"
	outcomeDependency       = "dependency"
	outcomeRollbackFailed   = "rollback_failed"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type stockLedger interface {
	Adjust(ctx context.Context, variantID uuid.UUID, delta int) (int, error)
}

type cartManager interface {
	Lines(ctx context.Context, sessionID string) ([]cart.Line, error)
	Clear(ctx context.Context, sessionID string) error
}

type profileResolver interface {
	ResolveCheckoutProfiles(ctx context.Context, userID uuid.UUID) (*users.CheckoutProfiles, error)
}

// Service converts a session cart into a confirmed order. Stock is
// decremented first and validated after, because the ledger's single-row
// adjust is the only atomic primitive available; failed attempts are
// compensated line by line.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID, sessionID string) (*orders.OrderDTO, error)
}

type service struct {
	tx         txRunner
	ledger     stockLedger
	carts      cartManager
	ordersRepo orders.Repository
	profiles   profileResolver
	metrics    *metrics.CheckoutMetrics
	logg       *logger.Logger
}

// NewService builds the checkout orchestrator.
func NewService(
	tx txRunner,
	ledger stockLedger,
	carts cartManager,
	ordersRepo orders.Repository,
	profiles profileResolver,
	checkoutMetrics *metrics.CheckoutMetrics,
	logg *logger.Logger,
) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if ledger == nil {
		return nil, fmt.Errorf("stock ledger required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart manager required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profile resolver required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		tx:         tx,
		ledger:     ledger,
		carts:      carts,
		ordersRepo: ordersRepo,
		profiles:   profiles,
		metrics:    checkoutMetrics,
		logg:       logg,
	}, nil
}

// lineResult is one cart line's reservation outcome. A line is applied when
// the decrement reached the ledger, even if the resulting stock went
// negative; applied lines are the ones compensation must undo.
type lineResult struct {
	line     cart.Line
	newStock int
	err      error
}

func (r lineResult) applied() bool {
	return r.err == nil
}

func (r lineResult) succeeded() bool {
	return r.err == nil && r.newStock >= 0
}

func (s *service) Checkout(ctx context.Context, userID uuid.UUID, sessionID string) (*orders.OrderDTO, error) {
	start := time.Now()
	dto, outcome, err := s.checkout(ctx, userID, sessionID)
	s.metrics.IncAttempt(outcome)
	s.metrics.ObserveDuration(outcome, time.Since(start))
	return dto, err
}

func (s *service) checkout(ctx context.Context, userID uuid.UUID, sessionID string) (*orders.OrderDTO, string, error) {
	if userID == uuid.Nil {
		return nil, outcomeDependency, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, outcomeDependency, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}

	ctx = s.logg.WithSessionID(ctx, sessionID)
	ctx = s.logg.WithUserID(ctx, userID.String())

	lines, err := s.carts.Lines(ctx, sessionID)
	if err != nil {
		return nil, outcomeDependency, err
	}
	if len(lines) == 0 {
		return nil, outcomeEmptyCart, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart contains no items")
	}

	profiles, err := s.profiles.ResolveCheckoutProfiles(ctx, userID)
	if err != nil {
		return nil, outcomeDependency, err
	}

	results := s.reserve(ctx, lines)

	allOK := true
	for _, result := range results {
		if !result.succeeded() {
			allOK = false
			break
		}
	}

	if !allOK {
		outcome, err := s.rollback(ctx, results)
		return nil, outcome, err
	}

	order, err := s.commit(ctx, userID, profiles, lines)
	if err != nil {
		// the reservation must not outlive a failed commit
		s.logg.Error(ctx, "order persistence failed, compensating reservation", err)
		if _, rollbackErr := s.compensate(ctx, results); rollbackErr != nil {
			return nil, outcomeRollbackFailed, rollbackErr
		}
		return nil, outcomeDependency, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting order")
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// the order exists and stock is settled; losing the stale cart
		// is preferable to unwinding a committed checkout
		s.logg.Error(ctx, "clearing cart after checkout", err)
	}

	ctx = s.logg.WithOrderID(ctx, order.ID.String())
	s.logg.Info(ctx, "checkout confirmed")
	return orders.NewOrderDTO(order), outcomeConfirmed, nil
}

// reserve issues every line's decrement concurrently and joins on the full
// set; no commit or rollback decision is made until all N calls resolve.
func (s *service) reserve(ctx context.Context, lines []cart.Line) []lineResult {
	results := make([]lineResult, len(lines))
	var wg sync.WaitGroup
	wg.Add(len(lines))
	for i, line := range lines {
		go func(i int, line cart.Line) {
			defer wg.Done()
			newStock, err := s.ledger.Adjust(ctx, line.VariantID, -line.Quantity)
			results[i] = lineResult{line: line, newStock: newStock, err: err}
		}(i, line)
	}
	wg.Wait()
	return results
}

// rollback compensates every applied decrement after a failed reservation
// and classifies the outward error.
func (s *service) rollback(ctx context.Context, results []lineResult) (string, error) {
	unavailable, err := s.compensate(ctx, results)
	if err != nil {
		return outcomeRollbackFailed, err
	}

	if len(unavailable) > 0 {
		return outcomeStockUnavailable, pkgerrors.New(
			pkgerrors.CodeStockUnavailable, "insufficient stock for one or more items",
		).WithDetails(unavailable)
	}

	// every failure was infrastructure-level, nothing went negative
	var causes error
	for _, result := range results {
		if result.err != nil {
			causes = multierr.Append(causes, result.err)
		}
	}
	return outcomeDependency, pkgerrors.Wrap(pkgerrors.CodeDependency, causes, "reserving stock")
}

// compensate re-increments every applied line concurrently, waits for the
// full set, and returns the variant ids that drove stock negative. All
// compensation failures are collected; none blocks the others.
func (s *service) compensate(ctx context.Context, results []lineResult) ([]uuid.UUID, error) {
	var unavailable []uuid.UUID
	rollbackErrs := make([]error, len(results))
	var wg sync.WaitGroup
	attempted := 0

	for i, result := range results {
		if !result.applied() {
			lineCtx := s.logg.WithField(ctx, "variant_id", result.line.VariantID.String())
			s.logg.Warn(lineCtx, "stock decrement failed: "+result.err.Error())
			continue
		}
		if result.newStock < 0 {
			unavailable = append(unavailable, result.line.VariantID)
		}
		attempted++
		wg.Add(1)
		go func(i int, result lineResult) {
			defer wg.Done()
			if _, err := s.ledger.Adjust(ctx, result.line.VariantID, result.line.Quantity); err != nil {
				rollbackErrs[i] = err
			}
		}(i, result)
	}
	wg.Wait()

	var combined error
	failed := 0
	for i, err := range rollbackErrs {
		if err == nil {
			continue
		}
		failed++
		lineCtx := s.logg.WithField(ctx, "variant_id", results[i].line.VariantID.String())
		s.logg.Error(lineCtx, "stock compensation failed", err)
		combined = multierr.Append(combined, err)
	}
	s.metrics.AddRollbackLines(attempted - failed)

	if combined != nil {
		// fatal: decrements may be left applied with no order
		return unavailable, pkgerrors.Wrap(
			pkgerrors.CodeRollbackFailed, combined,
			"stock compensation failed, inventory requires reconciliation",
		)
	}
	return unavailable, nil
}

func (s *service) commit(ctx context.Context, userID uuid.UUID, profiles *users.CheckoutProfiles, lines []cart.Line) (*models.Order, error) {
	order := buildOrder(userID, profiles, lines)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.ordersRepo.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func buildOrder(userID uuid.UUID, profiles *users.CheckoutProfiles, lines []cart.Line) *models.Order {
	order := &models.Order{
		ID:                uuid.New(),
		UserID:            userID,
		Status:            enums.OrderStatusPlaced,
		ShippingProfileID: profiles.ShippingProfileID,
		PaymentProfileID:  profiles.PaymentProfileID,
		PlacedAt:          time.Now().UTC(),
	}
	for _, line := range lines {
		lineTotal := line.UnitPriceCents * line.Quantity
		order.ChargeSubtotalCents += lineTotal
		order.Items = append(order.Items, models.OrderLineItem{
			ID:             uuid.New(),
			OrderID:        order.ID,
			VariantID:      line.VariantID,
			ProductID:      line.ProductID,
			Title:          lineTitle(line),
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
			LineTotalCents: lineTotal,
		})
	}
	order.ChargeTotalCents = order.ChargeSubtotalCents + order.ChargeTaxCents + order.ChargeShippingCents
	return order
}

func lineTitle(line cart.Line) string {
	if line.ProductTitle == "" {
		return line.Title
	}
	return line.ProductTitle + " / " + line.Title
}
