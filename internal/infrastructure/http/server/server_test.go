package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant/internal/domain/catalog"
	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository/mocks"
	"restaurant/internal/infrastructure/http/handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) RecordRequest(method, route string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status})
}

func TestServer_RoutesAndRequestMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	getUC := mocks.NewMockGetOrderUseCaseProvider(ctrl)
	getUC.EXPECT().Execute(gomock.Any(), model.OrderID(5)).Return(nil, model.ErrOrderNotFound)

	orderHandler := handlers.NewOrderHandler(
		mocks.NewMockAddOrderUseCaseProvider(ctrl),
		getUC,
		mocks.NewMockDeleteOrderUseCaseProvider(ctrl),
		mocks.NewMockListTableOrdersUseCaseProvider(ctrl),
		zap.NewNop(),
	)
	metrics := &fakeMetrics{}
	srv := NewServer(orderHandler, handlers.NewMealHandler(catalog.Default()), metrics, zap.NewNop())

	for _, path := range []string{"/order/5", "/meals", "/nowhere"} {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, path, nil)
		require.NoError(t, err)
		srv.Handler().ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, metrics.requests, 3)
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/order/:id", status: http.StatusNotFound}, metrics.requests[0])
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/meals", status: http.StatusOK}, metrics.requests[1])
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound}, metrics.requests[2])
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	orderHandler := handlers.NewOrderHandler(
		mocks.NewMockAddOrderUseCaseProvider(ctrl),
		mocks.NewMockGetOrderUseCaseProvider(ctrl),
		mocks.NewMockDeleteOrderUseCaseProvider(ctrl),
		mocks.NewMockListTableOrdersUseCaseProvider(ctrl),
		zap.NewNop(),
	)
	srv := NewServer(orderHandler, handlers.NewMealHandler(catalog.Default()), &fakeMetrics{}, zap.NewNop())

	assert.NoError(t, srv.Shutdown(context.Background()))
}
