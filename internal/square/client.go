package square

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/justinsenglish/crave.api/internal/config"
	"github.com/justinsenglish/crave.api/internal/metrics"
)

const (
	apiVersion = "2024-01-18"

	// Square caps search/list page sizes at 500.
	pageLimit = 500

	statusActive        = "ACTIVE"
	orderStateCompleted = "COMPLETED"
)

var (
	ErrMissingToken = errors.New("square access token is required")
	ErrNotFound     = errors.New("square resource not found")
	ErrUnauthorized = errors.New("square unauthorized")
	ErrRateLimited  = errors.New("square rate limited")
)

// APIError carries the vendor's status and error payload for logging. It is
// never serialized into a client-facing response.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("square api error: %s", e.Status)
	}
	return fmt.Sprintf("square api error: %s: %s", e.Status, e.Body)
}

// Client wraps the Square REST API. It is stateless beyond its credential,
// so one instance is shared across concurrent requests.
type Client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.SquareBaseURL).
		SetHeader("Square-Version", apiVersion).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.SquareTimeout).
		SetRetryCount(1).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		})

	if cfg.SquareAccessToken != "" {
		httpClient.SetAuthScheme("Bearer")
		httpClient.SetAuthToken(cfg.SquareAccessToken)
	}

	return &Client{http: httpClient}
}

// ListLocations returns the merchant's locations filtered to ACTIVE status.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	if !c.hasToken() {
		return nil, ErrMissingToken
	}

	var resp listLocationsResponse
	if err := c.doGet(ctx, "locations", "/v2/locations", nil, &resp); err != nil {
		return nil, err
	}

	active := make([]Location, 0, len(resp.Locations))
	for _, loc := range resp.Locations {
		if loc.Status == statusActive {
			active = append(active, loc)
		}
	}

	return active, nil
}

// GetLocation retrieves a single location. A missing location surfaces as
// ErrNotFound, distinct from transport or auth failures.
func (c *Client) GetLocation(ctx context.Context, locationID string) (Location, error) {
	if !c.hasToken() {
		return Location{}, ErrMissingToken
	}
	if strings.TrimSpace(locationID) == "" {
		return Location{}, fmt.Errorf("%w: empty location id", ErrNotFound)
	}

	var resp retrieveLocationResponse
	path := fmt.Sprintf("/v2/locations/%s", locationID)
	if err := c.doGet(ctx, "retrieve_location", path, nil, &resp); err != nil {
		return Location{}, err
	}

	return resp.Location, nil
}

// SearchOrders fetches one page of COMPLETED orders closed within
// [startAt, endAt], sorted ascending by close time. The returned cursor is
// empty when the result set is exhausted.
func (c *Client) SearchOrders(ctx context.Context, locationID, startAt, endAt, cursor string) ([]Order, string, error) {
	if !c.hasToken() {
		return nil, "", ErrMissingToken
	}

	body := searchOrdersRequest{
		LocationIDs: []string{locationID},
		Cursor:      cursor,
		Limit:       pageLimit,
		Query: &searchOrdersQuery{
			Filter: &searchOrdersFilter{
				DateTimeFilter: &dateTimeFilter{
					ClosedAt: &timeRange{StartAt: startAt, EndAt: endAt},
				},
				StateFilter: &stateFilter{States: []string{orderStateCompleted}},
			},
			Sort: &searchOrdersSort{SortField: "CLOSED_AT", SortOrder: "ASC"},
		},
	}

	start := time.Now()
	var resp searchOrdersResponse
	r, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&resp).
		Post("/v2/orders/search")
	err = c.finish("search_orders", r, err, start)
	if err != nil {
		return nil, "", err
	}

	return resp.Orders, resp.Cursor, nil
}

// ListPayments fetches one page of payments for the location within
// [beginTime, endTime], mirroring the SearchOrders pagination contract.
func (c *Client) ListPayments(ctx context.Context, locationID, beginTime, endTime, cursor string) ([]Payment, string, error) {
	if !c.hasToken() {
		return nil, "", ErrMissingToken
	}

	query := map[string]string{
		"begin_time":  beginTime,
		"end_time":    endTime,
		"location_id": locationID,
		"limit":       strconv.Itoa(pageLimit),
	}
	if cursor != "" {
		query["cursor"] = cursor
	}

	var resp listPaymentsResponse
	if err := c.doGet(ctx, "list_payments", "/v2/payments", query, &resp); err != nil {
		return nil, "", err
	}

	return resp.Payments, resp.Cursor, nil
}

func (c *Client) doGet(ctx context.Context, endpoint, path string, query map[string]string, result any) error {
	req := c.http.R().SetContext(ctx).SetResult(result)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	start := time.Now()
	resp, err := req.Get(path)
	return c.finish(endpoint, resp, err, start)
}

func (c *Client) finish(endpoint string, resp *resty.Response, err error, start time.Time) error {
	if err != nil {
		err = fmt.Errorf("square request: %w", err)
	} else if resp.IsError() {
		err = apiErrorFromResponse(resp)
	}
	metrics.ObserveSquareCall(endpoint, err, time.Since(start))
	return err
}

func (c *Client) hasToken() bool {
	return strings.TrimSpace(c.http.Token) != ""
}

func apiErrorFromResponse(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       strings.TrimSpace(resp.String()),
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error())
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Error())
	default:
		return apiErr
	}
}
