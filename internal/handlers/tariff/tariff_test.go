package tariff

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/aramvolt/voltbook/internal/domain"
)

func NewMock(t *testing.T) (*TariffHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetTariff(t *testing.T) {
	handler, service := NewMock(t)
	updatedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Current tariff returned",
			prepareMock: func() {
				service.EXPECT().CurrentRate().Return(domain.Tariff{
					Rate:      0.2,
					Currency:  "USD",
					UpdatedAt: updatedAt,
				}, true)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"rate":0.2,"currency":"USD","updated_at":"2024-01-01T12:00:00Z"}`,
		},
		{
			name: "No tariff fetched yet",
			prepareMock: func() {
				service.EXPECT().CurrentRate().Return(domain.Tariff{}, false)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"No tariff available"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/tariff", nil)
			rr := httptest.NewRecorder()
			handler.GetTariff(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
