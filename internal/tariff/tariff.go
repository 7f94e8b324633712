package tariff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/aramvolt/voltbook/internal/config"
	"github.com/aramvolt/voltbook/internal/domain"
	"go.uber.org/zap"

	"github.com/aramvolt/voltbook/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Response struct {
	Rate     float64 `json:"rate"`
	Currency string  `json:"currency"`
}

// Service polls the tariff provider for the current price per kWh and
// caches the latest rate. Entries still carry a user-supplied price; the
// cached rate is only offered to portals as a prefill.
type Service struct {
	url            string
	client         clients.HTTPClientI
	updateInterval time.Duration

	mu      sync.RWMutex
	current *domain.Tariff
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.TariffAddress,
		client:         client,
		updateInterval: time.Minute * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.url == "" {
		zap.L().Info("tariff polling disabled, no provider configured")
		return
	}
	zap.L().Info("tariff service started", zap.String("provider", s.url))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	if err := s.refresh(ctx); err != nil {
		zap.L().Error("initial tariff fetch failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping tariff service")
			return
		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				zap.L().Error("tariff refresh failed", zap.Error(err))
			}
		}
	}
}

func (s *Service) refresh(ctx context.Context) error {
	url := s.url + "/api/tariff/current"

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err := s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to fetch tariff after %d retries: %w", maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				s.waitRateLimit(respHeaders, attempt)
				continue
			case http.StatusOK:
				return s.store(respBody)
			default:
				return fmt.Errorf("unexpected status code %d from tariff provider", statusCode)
			}
		}
	}
	return nil
}

func (s *Service) store(respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse tariff response: %w", err)
	}
	if response.Rate < 0 {
		return fmt.Errorf("provider returned negative rate %f", response.Rate)
	}

	s.mu.Lock()
	s.current = &domain.Tariff{
		Rate:      response.Rate,
		Currency:  response.Currency,
		UpdatedAt: time.Now(),
	}
	s.mu.Unlock()

	zap.L().Info("tariff updated", zap.Float64("rate", response.Rate), zap.String("currency", response.Currency))
	return nil
}

// CurrentRate returns the last fetched tariff, if any.
func (s *Service) CurrentRate() (domain.Tariff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Tariff{}, false
	}
	return *s.current, true
}

func (s *Service) waitRateLimit(respHeaders http.Header, attempt int) {
	retryAfter := retryInterval * time.Duration(attempt)

	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
	time.Sleep(retryAfter)
}
