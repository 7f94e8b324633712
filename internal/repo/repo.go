package repo

import (
	"context"

	"github.com/aramvolt/voltbook/internal/domain"
	"github.com/aramvolt/voltbook/internal/pg"
	filerepo "github.com/aramvolt/voltbook/internal/repo/file-repo"
	partnerrepo "github.com/aramvolt/voltbook/internal/repo/partner-repo"
)

// PartnerRepo is the full partner store contract; both backends implement
// it and services consume narrower views of it.
type PartnerRepo interface {
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string) (*domain.Partner, error)
	Load(ctx context.Context, name string) ([]domain.UsageEntry, error)
	Append(ctx context.Context, name string, entry domain.UsageEntry) error
	Delete(ctx context.Context, name string) error
}

type Repositories struct {
	Partner PartnerRepo
}

// New builds the postgres-backed store.
func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Partner: partnerrepo.New(conn, txManager),
	}
}

// NewFile builds the CSV-per-partner store rooted at dataDir.
func NewFile(dataDir string) (*Repositories, error) {
	partnerRepo, err := filerepo.New(dataDir)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Partner: partnerRepo,
	}, nil
}
