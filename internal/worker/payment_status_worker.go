package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/repository"
	"github.com/caribtel/storefront-api/pkg/payment"
)

// PaymentStatusWorker re-polls card charges stuck in processing. The gateway
// is idempotent: fetching a charge returns its current status without side
// effects.
type PaymentStatusWorker struct {
	orders     *repository.OrderRepository
	payments   *payment.Client
	interval   time.Duration
	staleAfter time.Duration // how long a charge sits before re-checking
	maxAge     time.Duration // max age before timing the order out as failed
}

// NewPaymentStatusWorker constructs a PaymentStatusWorker.
func NewPaymentStatusWorker(
	orders *repository.OrderRepository,
	payments *payment.Client,
	interval time.Duration,
	staleAfter time.Duration,
	maxAge time.Duration,
) *PaymentStatusWorker {
	return &PaymentStatusWorker{
		orders:     orders,
		payments:   payments,
		interval:   interval,
		staleAfter: staleAfter,
		maxAge:     maxAge,
	}
}

// Start begins the periodic poll loop until context is canceled.
func (w *PaymentStatusWorker) Start(ctx context.Context) {
	log.Info().
		Dur("interval", w.interval).
		Dur("stale_after", w.staleAfter).
		Dur("max_age", w.maxAge).
		Msg("Starting payment status worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Payment status worker stopped")
			return
		}
	}
}

func (w *PaymentStatusWorker) run(ctx context.Context) {
	stale, err := w.orders.GetStaleProcessing(w.staleAfter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get stale processing orders")
		return
	}
	if len(stale) == 0 {
		return
	}

	log.Info().Int("count", len(stale)).Msg("Re-checking stale processing orders")

	for i := range stale {
		select {
		case <-ctx.Done():
			return
		default:
			w.checkOrder(ctx, &stale[i])
		}
	}
}

func (w *PaymentStatusWorker) checkOrder(ctx context.Context, order *models.Order) {
	if time.Since(order.CreatedAt) > w.maxAge {
		log.Warn().
			Str("order_number", order.OrderNumber).
			Dur("age", time.Since(order.CreatedAt)).
			Msg("Charge timed out, marking order failed")
		if err := w.orders.UpdatePaymentStatus(order.ID, models.PaymentStatusFailed); err != nil {
			log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("Failed to mark order failed")
		}
		return
	}

	charge, err := w.payments.GetCharge(ctx, *order.ChargeID)
	if err != nil {
		log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("Charge status check failed")
		return
	}

	switch charge.Status {
	case payment.ChargeStatusSettled:
		if err := w.orders.UpdatePaymentStatus(order.ID, models.PaymentStatusPaid); err != nil {
			log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("Failed to mark order paid")
			return
		}
		log.Info().Str("order_number", order.OrderNumber).Msg("Charge settled, order paid")
	case payment.ChargeStatusDeclined:
		if err := w.orders.UpdatePaymentStatus(order.ID, models.PaymentStatusFailed); err != nil {
			log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("Failed to mark order failed")
			return
		}
		log.Info().Str("order_number", order.OrderNumber).Msg("Charge declined, order failed")
	default:
		// Still pending at the gateway; check again on the next tick.
	}
}
