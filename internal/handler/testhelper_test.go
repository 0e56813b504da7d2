package handler

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/justinsenglish/crave.api/internal/config"
	"github.com/justinsenglish/crave.api/internal/square"
)

// fakeGateway serves a fixed location set and single-page order/payment
// results, enough to exercise every route end to end.
type fakeGateway struct {
	locations []square.Location
	orders    []square.Order
	payments  []square.Payment
	err       error
}

func (f *fakeGateway) ListLocations(ctx context.Context) ([]square.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locations, nil
}

func (f *fakeGateway) GetLocation(ctx context.Context, locationID string) (square.Location, error) {
	if f.err != nil {
		return square.Location{}, f.err
	}
	for _, loc := range f.locations {
		if loc.ID == locationID {
			return loc, nil
		}
	}
	return square.Location{}, square.ErrNotFound
}

func (f *fakeGateway) SearchOrders(ctx context.Context, locationID, startAt, endAt, cursor string) ([]square.Order, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.orders, "", nil
}

func (f *fakeGateway) ListPayments(ctx context.Context, locationID, beginTime, endTime, cursor string) ([]square.Payment, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.payments, "", nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              "8080",
		GinMode:           gin.TestMode,
		SquareAccessToken: "test-token",
		BusinessTimezone:  "America/Denver",
		SessionJWTSecret:  "test-secret",
		AuthDisabled:      true,
	}
}

func setupRouter(t *testing.T, cfg *config.Config, gw *fakeGateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	timezone, err := time.LoadLocation(cfg.BusinessTimezone)
	require.NoError(t, err)

	return NewRouter(cfg, gw, timezone)
}
