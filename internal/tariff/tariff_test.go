package tariff

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/aramvolt/voltbook/internal/config"
)

func newServiceMock(t *testing.T) (*Service, *MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := NewMockHTTPClientI(ctrl)
	service := New(&config.Config{TariffAddress: "http://tariff.local"}, client)
	t.Cleanup(ctrl.Finish)
	return service, client
}

func TestCurrentRateBeforeFetch(t *testing.T) {
	service, _ := newServiceMock(t)

	_, ok := service.CurrentRate()
	assert.False(t, ok)
}

func TestRefreshStoresRate(t *testing.T) {
	service, client := newServiceMock(t)

	client.EXPECT().Get("http://tariff.local/api/tariff/current", gomock.Nil()).
		Return(http.StatusOK, []byte(`{"rate":0.2,"currency":"USD"}`), http.Header{}, nil)

	assert.NoError(t, service.refresh(context.Background()))

	tariff, ok := service.CurrentRate()
	assert.True(t, ok)
	assert.Equal(t, 0.2, tariff.Rate)
	assert.Equal(t, "USD", tariff.Currency)
	assert.False(t, tariff.UpdatedAt.IsZero())
}

func TestRefreshRateLimited(t *testing.T) {
	service, client := newServiceMock(t)

	headers := http.Header{}
	headers.Set("Retry-After", "0")
	gomock.InOrder(
		client.EXPECT().Get("http://tariff.local/api/tariff/current", gomock.Nil()).
			Return(http.StatusTooManyRequests, nil, headers, nil),
		client.EXPECT().Get("http://tariff.local/api/tariff/current", gomock.Nil()).
			Return(http.StatusOK, []byte(`{"rate":0.25,"currency":"USD"}`), http.Header{}, nil),
	)

	assert.NoError(t, service.refresh(context.Background()))

	tariff, ok := service.CurrentRate()
	assert.True(t, ok)
	assert.Equal(t, 0.25, tariff.Rate)
}

func TestRefreshUnexpectedStatus(t *testing.T) {
	service, client := newServiceMock(t)

	client.EXPECT().Get("http://tariff.local/api/tariff/current", gomock.Nil()).
		Return(http.StatusInternalServerError, nil, http.Header{}, nil)

	assert.Error(t, service.refresh(context.Background()))

	_, ok := service.CurrentRate()
	assert.False(t, ok)
}

func TestRefreshCanceledContext(t *testing.T) {
	service, _ := newServiceMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, service.refresh(ctx), context.Canceled)
}

func TestStore(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
	}{
		{
			name: "Valid payload",
			body: `{"rate":0.2,"currency":"USD"}`,
		},
		{
			name:      "Negative rate rejected",
			body:      `{"rate":-1,"currency":"USD"}`,
			expectErr: true,
		},
		{
			name:      "Malformed payload",
			body:      `not-json`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newServiceMock(t)

			err := service.store([]byte(tt.body))
			if tt.expectErr {
				assert.Error(t, err)
				_, ok := service.CurrentRate()
				assert.False(t, ok)
			} else {
				assert.NoError(t, err)
				_, ok := service.CurrentRate()
				assert.True(t, ok)
			}
		})
	}
}
