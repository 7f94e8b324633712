package partnerservice

import (
	"context"
	"errors"
	"strings"

	"github.com/aramvolt/voltbook/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) (*domain.Partner, error)
	Delete(ctx context.Context, name string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrEmptyName   = errors.New("partner name cannot be empty")
	ErrInvalidName = errors.New("partner name contains invalid characters")
)

func (s *Service) ListPartners(ctx context.Context) ([]string, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list partners", zap.Error(err))
		return nil, err
	}
	return names, nil
}

// CreatePartner registers an empty record-set for the trimmed name. Names
// that would escape the store's namespace are rejected up front.
func (s *Service) CreatePartner(ctx context.Context, name string) (*domain.Partner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, ErrInvalidName
	}

	partner, err := s.repo.Create(ctx, name)
	if err != nil {
		zap.L().Info("can't create partner", zap.String("partner", name), zap.Error(err))
		return nil, err
	}

	zap.L().Info("partner created", zap.String("partner", name))
	return partner, nil
}

func (s *Service) DeletePartner(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		zap.L().Error("failed to delete partner", zap.String("partner", name), zap.Error(err))
		return err
	}
	zap.L().Info("partner deleted", zap.String("partner", name))
	return nil
}
