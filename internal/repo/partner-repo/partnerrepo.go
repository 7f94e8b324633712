package partnerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/aramvolt/voltbook/internal/domain"
	"github.com/aramvolt/voltbook/internal/pg"
	"github.com/aramvolt/voltbook/internal/repo/repoerrors"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) List(ctx context.Context) ([]string, error) {
	query := `
        SELECT name
        FROM partners
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list partners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			zap.L().Error("failed to scan partner name", zap.Error(err))
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (r *Repository) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM partners WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check partner existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, name string) (*domain.Partner, error) {
	var partner domain.Partner
	query := `
        INSERT INTO partners (name)
        VALUES ($1)
        ON CONFLICT (name) DO NOTHING
        RETURNING id, name, created_at
    `
	err := r.db.QueryRow(ctx, query, name).Scan(&partner.ID, &partner.Name, &partner.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repoerrors.ErrPartnerExists
		}
		zap.L().Error("failed to create partner", zap.Error(err))
		return nil, err
	}
	return &partner, nil
}

// Load returns the partner's entries in insertion order. An unknown partner
// yields an empty record-set, matching the file backend.
func (r *Repository) Load(ctx context.Context, name string) ([]domain.UsageEntry, error) {
	query := `
        SELECT e.entry_date, e.last_read, e.new_read, e.withdrawl,
               e.withdrawl_price, e.withdrawl_by_cash, e.paid, e.left_amount
        FROM usage_entries e
        JOIN partners p ON p.id = e.partner_id
        WHERE p.name = $1
        ORDER BY e.id
    `
	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		zap.L().Error("failed to load entries", zap.String("partner", name), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.UsageEntry
	for rows.Next() {
		var e domain.UsageEntry
		err := rows.Scan(&e.Date, &e.LastRead, &e.NewRead, &e.Withdrawl,
			&e.WithdrawlPrice, &e.WithdrawlByCash, &e.Paid, &e.Left)
		if err != nil {
			zap.L().Error("failed to scan entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *Repository) Append(ctx context.Context, name string, entry domain.UsageEntry) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var partnerID int
		err := r.db.QueryRow(ctx, `SELECT id FROM partners WHERE name = $1`, name).Scan(&partnerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return repoerrors.ErrPartnerNotFound
			}
			zap.L().Error("failed to find partner", zap.String("partner", name), zap.Error(err))
			return err
		}

		query := `
            INSERT INTO usage_entries (partner_id, entry_date, last_read, new_read,
                                       withdrawl, withdrawl_price, withdrawl_by_cash, paid, left_amount)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `
		_, err = r.db.Exec(ctx, query, partnerID, entry.Date, entry.LastRead, entry.NewRead,
			entry.Withdrawl, entry.WithdrawlPrice, entry.WithdrawlByCash, entry.Paid, entry.Left)
		if err != nil {
			zap.L().Error("can't save entry", zap.String("partner", name), zap.Error(err))
			return err
		}
		return nil
	})
}

// Delete removes the partner and, via cascade, its entries. Idempotent.
func (r *Repository) Delete(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM partners WHERE name = $1`, name)
	if err != nil {
		zap.L().Error("failed to delete partner", zap.String("partner", name), zap.Error(err))
		return err
	}
	return nil
}
