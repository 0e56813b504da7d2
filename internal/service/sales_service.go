package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/justinsenglish/crave.api/internal/model"
)

// Franchise agreement rates applied to the royalty base
// (gross sales + service charges + returns + discounts).
const (
	royaltyRate      = 0.06
	marketingFeeRate = 0.02
)

const unknownSource = "Unknown"

type SalesService struct {
	gw       Gateway
	timezone *time.Location
}

// NewSalesService builds an aggregator bound to the business timezone used
// to resolve calendar dates into day bounds.
func NewSalesService(gw Gateway, timezone *time.Location) *SalesService {
	return &SalesService{gw: gw, timezone: timezone}
}

// orderTotals and paymentTotals accumulate in integer minor units. Conversion
// to major units happens exactly once, in buildSummary.
type orderTotals struct {
	gross               int64
	serviceCharges      int64
	returns             int64
	discounts           int64
	taxes               int64
	tips                int64
	roundingAdjustments int64
	giftCardSales       int64
	channelRevenue      map[string]int64
}

type paymentTotals struct {
	fees            int64
	cash            int64
	card            int64
	giftCard        int64
	other           int64
	externalSources map[string]int64
}

// Summary drains every page of orders and payments for the location within
// the date range and folds them into one sales summary. A failed page fetch
// aborts the whole aggregation; partial sums are never returned.
func (s *SalesService) Summary(ctx context.Context, locationID string, start, end time.Time) (model.SalesSummary, error) {
	startAt, endAt, err := s.rangeBounds(start, end)
	if err != nil {
		return model.SalesSummary{}, err
	}

	var (
		orders   orderTotals
		payments paymentTotals
	)

	// The two drains are independent of each other; each one follows its
	// own cursors strictly sequentially.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.drainOrders(gctx, locationID, startAt, endAt)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.drainPayments(gctx, locationID, startAt, endAt)
		return err
	})

	if err := g.Wait(); err != nil {
		return model.SalesSummary{}, fmt.Errorf("aggregate sales for %s: %w", locationID, err)
	}

	return buildSummary(orders, payments), nil
}

// rangeBounds expands two calendar dates to full business days in the
// configured timezone, formatted for the vendor API.
func (s *SalesService) rangeBounds(start, end time.Time) (string, string, error) {
	if start.IsZero() || end.IsZero() {
		return "", "", model.ErrInvalidDateRange
	}
	if end.Before(start) {
		return "", "", fmt.Errorf("%w: end date precedes start date", model.ErrInvalidDateRange)
	}

	startAt := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.timezone)
	endAt := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, s.timezone)

	return startAt.Format(time.RFC3339), endAt.Format(time.RFC3339), nil
}

func (s *SalesService) drainOrders(ctx context.Context, locationID, startAt, endAt string) (orderTotals, error) {
	totals := orderTotals{channelRevenue: make(map[string]int64)}

	cursor := ""
	for {
		orders, next, err := s.gw.SearchOrders(ctx, locationID, startAt, endAt, cursor)
		if err != nil {
			return orderTotals{}, fmt.Errorf("search orders: %w", err)
		}

		for _, order := range orders {
			total := order.TotalMoney.Value()

			totals.gross += total
			totals.discounts += order.TotalDiscountMoney.Value()
			totals.taxes += order.TotalTaxMoney.Value()
			totals.tips += order.TotalTipMoney.Value()
			if order.RoundingAdjustment != nil {
				totals.roundingAdjustments += order.RoundingAdjustment.AmountMoney.Value()
			}

			for _, charge := range order.ServiceCharges {
				totals.serviceCharges += charge.TotalMoney.Value()
			}

			for _, item := range order.LineItems {
				if strings.Contains(strings.ToLower(item.Name), "gift card") {
					totals.giftCardSales += item.TotalMoney.Value()
				}
			}

			for _, refund := range order.Refunds {
				totals.returns += refund.AmountMoney.Value()
			}

			channel := unknownSource
			if order.Source != nil && order.Source.Name != "" {
				channel = order.Source.Name
			}
			totals.channelRevenue[channel] += total
		}

		if next == "" {
			return totals, nil
		}
		cursor = next
	}
}

func (s *SalesService) drainPayments(ctx context.Context, locationID, beginTime, endTime string) (paymentTotals, error) {
	totals := paymentTotals{externalSources: make(map[string]int64)}

	cursor := ""
	for {
		payments, next, err := s.gw.ListPayments(ctx, locationID, beginTime, endTime, cursor)
		if err != nil {
			return paymentTotals{}, fmt.Errorf("list payments: %w", err)
		}

		for _, payment := range payments {
			for _, fee := range payment.ProcessingFee {
				totals.fees += fee.AmountMoney.Value()
			}

			amount := payment.AmountMoney.Value()

			switch strings.ToUpper(payment.SourceType) {
			case "CARD", "CREDIT_CARD", "DEBIT_CARD", "OTHER_CARD":
				totals.card += amount
			case "CASH":
				totals.cash += amount
			case "THIRD_PARTY_CARD", "GIFT_CARD":
				totals.giftCard += amount
			case "EXTERNAL":
				source := unknownSource
				if payment.ExternalDetails != nil && payment.ExternalDetails.Source != "" {
					source = payment.ExternalDetails.Source
				}
				totals.externalSources[source] += amount
			default:
				totals.other += amount
			}
		}

		if next == "" {
			return totals, nil
		}
		cursor = next
	}
}

func buildSummary(orders orderTotals, payments paymentTotals) model.SalesSummary {
	totalCollected := orders.gross + orders.taxes + orders.tips + orders.roundingAdjustments + orders.giftCardSales
	royaltyBase := orders.gross + orders.serviceCharges + orders.returns + orders.discounts

	channelRevenue := make(map[string]float64, len(orders.channelRevenue))
	for channel, cents := range orders.channelRevenue {
		channelRevenue[channel] = toMajor(cents)
	}

	externalSources := make(map[string]float64, len(payments.externalSources))
	for source, cents := range payments.externalSources {
		externalSources[source] = toMajor(cents)
	}

	return model.SalesSummary{
		GrossSales:          toMajor(orders.gross + orders.serviceCharges),
		Items:               toMajor(orders.gross - orders.serviceCharges),
		ServiceCharges:      toMajor(orders.serviceCharges),
		Returns:             toMajor(orders.returns),
		Discounts:           toMajor(orders.discounts),
		NetSales:            toMajor(orders.gross - orders.returns - orders.discounts),
		Taxes:               toMajor(orders.taxes),
		Tips:                toMajor(orders.tips),
		RoundingAdjustments: toMajor(orders.roundingAdjustments),
		GiftCardSales:       toMajor(orders.giftCardSales),
		TotalCollected:      toMajor(totalCollected),
		Cash:                toMajor(payments.cash),
		Card:                toMajor(payments.card),
		GiftCard:            toMajor(payments.giftCard),
		Other:               toMajor(payments.other),
		ChannelRevenue:      channelRevenue,
		ExternalSources:     externalSources,
		Fees:                toMajor(payments.fees),
		NetTotal:            toMajor(totalCollected - payments.fees),
		Royalties:           float64(royaltyBase) * royaltyRate / 100,
		MarketingFees:       float64(royaltyBase) * marketingFeeRate / 100,
	}
}

// toMajor converts integer minor units to major currency units.
func toMajor(cents int64) float64 {
	return float64(cents) / 100
}
