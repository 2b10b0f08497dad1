package billingcycle

import (
	"context"
	"errors"
	"time"

	"github.com/networkasro-maker/asro/internal/clock"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSweepInterval = time.Hour

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  customerdomain.Repository
}

// Worker rolls paid customers into the next billing period once their due
// date has passed.
type Worker struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	repo     customerdomain.Repository
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewWorker(p Params) *Worker {
	return &Worker{
		db:       p.DB,
		log:      p.Log.Named("billingcycle.worker"),
		clock:    p.Clock,
		repo:     p.Repo,
		interval: defaultSweepInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (w *Worker) run() {
	defer close(w.done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			if rolled, err := w.Sweep(context.Background()); err != nil {
				w.log.Error("billing sweep failed", zap.Error(err))
			} else if rolled > 0 {
				w.log.Info("billing sweep rolled customers", zap.Int("count", rolled))
			}
		}
	}
}

// Sweep resets every overdue paid customer to unpaid and advances the due
// date by one month. A version conflict defers the customer to the next
// sweep: a concurrent admin edit wins.
func (w *Worker) Sweep(ctx context.Context) (int, error) {
	customers, err := w.repo.List(ctx, w.db)
	if err != nil {
		return 0, err
	}

	now := w.clock.Now()
	rolled := 0
	for _, c := range customers {
		if c.PaymentStatus != customerdomain.PaymentPaid || !c.DueDate.Before(now) {
			continue
		}

		patch := map[string]any{
			"payment_status": customerdomain.PaymentUnpaid,
			"due_date":       nextDueDate(c.DueDate, now),
		}
		err := w.repo.UpdateVersioned(ctx, w.db, c.ID, c.Version, patch)
		if errors.Is(err, customerdomain.ErrStaleCustomer) {
			continue
		}
		if err != nil {
			return rolled, err
		}
		rolled++
	}
	return rolled, nil
}

// nextDueDate advances month by month until the due date is in the future,
// so a customer overdue for several periods lands on the upcoming one.
func nextDueDate(due, now time.Time) time.Time {
	next := due
	for !next.After(now) {
		next = next.AddDate(0, 1, 0)
	}
	return next
}

var Module = fx.Module("billingcycle",
	fx.Provide(NewWorker),
	fx.Invoke(func(lc fx.Lifecycle, w *Worker) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go w.run()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				close(w.stop)
				select {
				case <-w.done:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		})
	}),
)
