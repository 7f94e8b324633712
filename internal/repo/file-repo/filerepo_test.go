package filerepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aramvolt/voltbook/internal/domain"
	"github.com/aramvolt/voltbook/internal/repo/repoerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *Repository {
	repo, err := New(t.TempDir())
	require.NoError(t, err)
	return repo
}

func entry(day string, lastRead, newRead, price, paid float64) domain.UsageEntry {
	d, _ := time.Parse("2006-01-02", day)
	withdrawl := newRead - lastRead
	cash := withdrawl * price
	return domain.UsageEntry{
		Date:            d,
		LastRead:        lastRead,
		NewRead:         newRead,
		Withdrawl:       withdrawl,
		WithdrawlPrice:  price,
		WithdrawlByCash: cash,
		Paid:            paid,
		Left:            paid - cash,
	}
}

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "partner_data")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	partner, err := repo.Create(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", partner.Name)

	// A fresh partner is a header-only file with zero entries.
	entries, err := repo.Load(ctx, "Acme")
	assert.NoError(t, err)
	assert.Empty(t, entries)

	names, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, names)

	_, err = repo.Create(ctx, "Acme")
	assert.ErrorIs(t, err, repoerrors.ErrPartnerExists)
}

func TestLoadMissingPartnerIsEmpty(t *testing.T) {
	repo := newRepo(t)

	entries, err := repo.Load(context.Background(), "Ghost")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Acme")
	require.NoError(t, err)

	stored := []domain.UsageEntry{
		entry("2024-01-01", 100, 150, 0.20, 8),
		entry("2024-02-01", 150, 175.5, 0.25, 10),
		entry("2024-03-01", 175.5, 200, 0.1234, 0),
	}
	for _, e := range stored {
		require.NoError(t, repo.Append(ctx, "Acme", e))
	}

	loaded, err := repo.Load(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)
}

func TestAppendUnknownPartner(t *testing.T) {
	repo := newRepo(t)

	err := repo.Append(context.Background(), "Ghost", entry("2024-01-01", 1, 2, 1, 1))
	assert.ErrorIs(t, err, repoerrors.ErrPartnerNotFound)
}

func TestDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Acme")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, "Acme", entry("2024-01-01", 100, 150, 0.20, 8)))

	require.NoError(t, repo.Delete(ctx, "Acme"))

	names, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)

	// Deleting a partner that never existed is not an error.
	assert.NoError(t, repo.Delete(ctx, "Acme"))
	assert.NoError(t, repo.Delete(ctx, "Ghost"))
}

func TestExists(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, "Acme")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Create(ctx, "Acme")
	require.NoError(t, err)

	ok, err = repo.Exists(ctx, "Acme")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Create(ctx, "Acme")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup.csv"), 0o755))

	names, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, names)
}

func TestFileLayout(t *testing.T) {
	dir := t.TempDir()
	repo, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Create(ctx, "Acme")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, "Acme", entry("2024-01-01", 100, 150, 0.20, 8)))

	raw, err := os.ReadFile(filepath.Join(dir, "Acme.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"date,last_read,new_read,withdrawl,withdrawl_price,withdrawl_by_cash,paid,left\n"+
			"2024-01-01,100,150,50,0.2,10,8,-2\n",
		string(raw),
	)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Acme.csv"),
		[]byte("date,last_read,new_read,withdrawl,withdrawl_price,withdrawl_by_cash,paid,left\n2024-01-01,oops,1,1,1,1,1,1\n"), 0o644))

	_, err = repo.Load(context.Background(), "Acme")
	assert.Error(t, err)
}
