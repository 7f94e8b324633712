package ledgerservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/aramvolt/voltbook/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) ([]domain.UsageEntry, error)
	Append(ctx context.Context, name string, entry domain.UsageEntry) error
}

type Service struct {
	repo       Repo
	workerPool WorkerPoolI
}

func New(repo Repo) *Service {
	return &Service{
		repo:       repo,
		workerPool: NewWorkerPool(8),
	}
}

var (
	ErrReadingNotIncreased = errors.New("new read must be greater than last read")
	ErrNegativeValue       = errors.New("readings, price and paid amount must be non-negative")
)

// AddEntry validates the readings, computes the derived fields once and
// appends the finished row to the partner's record-set. Nothing is stored
// when validation fails.
func (s *Service) AddEntry(ctx context.Context, name string, date time.Time, lastRead, newRead, withdrawlPrice, paid float64) (*domain.UsageEntry, error) {
	if lastRead < 0 || newRead < 0 || withdrawlPrice < 0 || paid < 0 {
		return nil, ErrNegativeValue
	}
	if newRead <= lastRead {
		zap.L().Info("entry rejected",
			zap.String("partner", name),
			zap.Float64("last_read", lastRead),
			zap.Float64("new_read", newRead),
		)
		return nil, ErrReadingNotIncreased
	}

	withdrawl := newRead - lastRead
	withdrawlByCash := withdrawl * withdrawlPrice

	entry := domain.UsageEntry{
		Date:            date,
		LastRead:        lastRead,
		NewRead:         newRead,
		Withdrawl:       withdrawl,
		WithdrawlPrice:  withdrawlPrice,
		WithdrawlByCash: withdrawlByCash,
		Paid:            paid,
		Left:            paid - withdrawlByCash,
	}

	if err := s.repo.Append(ctx, name, entry); err != nil {
		zap.L().Error("can't append entry", zap.String("partner", name), zap.Error(err))
		return nil, err
	}

	zap.L().Info("entry added", zap.String("partner", name), zap.Float64("withdrawl", withdrawl))
	return &entry, nil
}

func (s *Service) GetEntries(ctx context.Context, name string) ([]domain.UsageEntry, error) {
	entries, err := s.repo.Load(ctx, name)
	if err != nil {
		zap.L().Error("failed to load entries", zap.String("partner", name), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetSummary(ctx context.Context, name string) (*domain.Summary, error) {
	entries, err := s.repo.Load(ctx, name)
	if err != nil {
		zap.L().Error("failed to load entries for summary", zap.String("partner", name), zap.Error(err))
		return nil, err
	}
	summary := Summarize(entries)
	return &summary, nil
}

// Summarize folds a record-set into its four totals. An empty record-set
// yields the zero summary.
func Summarize(entries []domain.UsageEntry) domain.Summary {
	var summary domain.Summary
	for _, e := range entries {
		summary.TotalConsumption += e.Withdrawl
		summary.TotalCashAmount += e.WithdrawlByCash
		summary.TotalPaid += e.Paid
		summary.TotalBalance += e.Left
	}
	return summary
}

// Overview computes the summary of every partner, fanning the loads out
// over the worker pool.
func (s *Service) Overview(ctx context.Context) ([]domain.PartnerOverview, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list partners for overview", zap.Error(err))
		return nil, err
	}

	var (
		mu        sync.Mutex
		overviews = make([]domain.PartnerOverview, 0, len(names))
	)
	var g errgroup.Group
	for _, name := range names {
		name := name
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				entries, err := s.repo.Load(ctx, name)
				if err != nil {
					return err
				}
				overview := domain.PartnerOverview{
					Name:    name,
					Entries: len(entries),
					Summary: Summarize(entries),
				}
				mu.Lock()
				overviews = append(overviews, overview)
				mu.Unlock()
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build overview", zap.Error(err))
		return nil, err
	}

	sort.Slice(overviews, func(i, j int) bool { return overviews[i].Name < overviews[j].Name })
	return overviews, nil
}
