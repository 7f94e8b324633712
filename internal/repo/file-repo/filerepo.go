package filerepo

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aramvolt/voltbook/internal/domain"
	"github.com/aramvolt/voltbook/internal/repo/repoerrors"
	"go.uber.org/zap"
)

const (
	fileExt    = ".csv"
	dateLayout = "2006-01-02"
)

var header = []string{
	"date", "last_read", "new_read", "withdrawl",
	"withdrawl_price", "withdrawl_by_cash", "paid", "left",
}

// Repository stores one CSV file per partner under dataDir. Writes replace
// the whole file through a temp-file rename, so readers never observe a
// partial record-set. Concurrent writers to the same partner are serialized
// by a per-partner mutex (last write wins).
type Repository struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dataDir string) (*Repository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create data directory %s: %w", dataDir, err)
	}
	return &Repository{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (r *Repository) lock(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	return l
}

func (r *Repository) path(name string) string {
	return filepath.Join(r.dataDir, name+fileExt)
}

func (r *Repository) List(ctx context.Context) ([]string, error) {
	files, err := os.ReadDir(r.dataDir)
	if err != nil {
		zap.L().Error("failed to list partner files", zap.Error(err))
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(f.Name(), fileExt))
	}
	return names, nil
}

func (r *Repository) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(r.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Load returns the partner's entries in stored order. A missing file is an
// empty record-set, not an error.
func (r *Repository) Load(ctx context.Context, name string) ([]domain.UsageEntry, error) {
	f, err := os.Open(r.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		zap.L().Error("failed to open partner file", zap.String("partner", name), zap.Error(err))
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		zap.L().Error("failed to read partner file", zap.String("partner", name), zap.Error(err))
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}

	entries := make([]domain.UsageEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		entry, err := parseRecord(rec)
		if err != nil {
			zap.L().Error("malformed row in partner file", zap.String("partner", name), zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *Repository) Create(ctx context.Context, name string) (*domain.Partner, error) {
	l := r.lock(name)
	l.Lock()
	defer l.Unlock()

	exists, err := r.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repoerrors.ErrPartnerExists
	}

	if err := r.writeAll(name, nil); err != nil {
		zap.L().Error("failed to create partner file", zap.String("partner", name), zap.Error(err))
		return nil, err
	}
	return &domain.Partner{Name: name, CreatedAt: time.Now()}, nil
}

func (r *Repository) Append(ctx context.Context, name string, entry domain.UsageEntry) error {
	l := r.lock(name)
	l.Lock()
	defer l.Unlock()

	exists, err := r.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return repoerrors.ErrPartnerNotFound
	}

	entries, err := r.Load(ctx, name)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	if err := r.writeAll(name, entries); err != nil {
		zap.L().Error("failed to append entry", zap.String("partner", name), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the partner's file. Deleting an unknown partner is not an
// error.
func (r *Repository) Delete(ctx context.Context, name string) error {
	l := r.lock(name)
	l.Lock()
	defer l.Unlock()

	if err := os.Remove(r.path(name)); err != nil && !os.IsNotExist(err) {
		zap.L().Error("failed to delete partner file", zap.String("partner", name), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) writeAll(name string, entries []domain.UsageEntry) error {
	tmp, err := os.CreateTemp(r.dataDir, name+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	for _, e := range entries {
		if err := w.Write(formatRecord(e)); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path(name))
}

func formatRecord(e domain.UsageEntry) []string {
	return []string{
		e.Date.Format(dateLayout),
		formatFloat(e.LastRead),
		formatFloat(e.NewRead),
		formatFloat(e.Withdrawl),
		formatFloat(e.WithdrawlPrice),
		formatFloat(e.WithdrawlByCash),
		formatFloat(e.Paid),
		formatFloat(e.Left),
	}
}

func parseRecord(rec []string) (domain.UsageEntry, error) {
	var entry domain.UsageEntry
	if len(rec) != len(header) {
		return entry, fmt.Errorf("expected %d columns, got %d", len(header), len(rec))
	}

	date, err := time.Parse(dateLayout, rec[0])
	if err != nil {
		return entry, fmt.Errorf("bad date %q: %w", rec[0], err)
	}
	fields := make([]float64, len(rec)-1)
	for i, raw := range rec[1:] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entry, fmt.Errorf("bad value %q in column %s: %w", raw, header[i+1], err)
		}
		fields[i] = v
	}

	entry = domain.UsageEntry{
		Date:            date,
		LastRead:        fields[0],
		NewRead:         fields[1],
		Withdrawl:       fields[2],
		WithdrawlPrice:  fields[3],
		WithdrawlByCash: fields[4],
		Paid:            fields[5],
		Left:            fields[6],
	}
	return entry, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
