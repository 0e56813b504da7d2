package service

import (
	"context"

	"github.com/justinsenglish/crave.api/internal/square"
)

// Gateway is the page-level contract services need from the Square client.
// Pagination stays visible here so the aggregation loop can be exercised
// against an in-memory fake.
type Gateway interface {
	ListLocations(ctx context.Context) ([]square.Location, error)
	GetLocation(ctx context.Context, locationID string) (square.Location, error)
	SearchOrders(ctx context.Context, locationID, startAt, endAt, cursor string) ([]square.Order, string, error)
	ListPayments(ctx context.Context, locationID, beginTime, endTime, cursor string) ([]square.Payment, string, error)
}
