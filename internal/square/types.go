package square

// Money is Square's monetary amount: integer minor units plus currency code.
type Money struct {
	Amount   int64  `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Value is nil-safe; Square omits zero amounts and absent money objects alike.
func (m *Money) Value() int64 {
	if m == nil {
		return 0
	}
	return m.Amount
}

type Address struct {
	AddressLine1                 string `json:"address_line_1,omitempty"`
	AddressLine2                 string `json:"address_line_2,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrative_district_level_1,omitempty"`
	PostalCode                   string `json:"postal_code,omitempty"`
	Country                      string `json:"country,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type Location struct {
	ID            string       `json:"id,omitempty"`
	Name          string       `json:"name,omitempty"`
	Status        string       `json:"status,omitempty"`
	Address       *Address     `json:"address,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	BusinessEmail string       `json:"business_email,omitempty"`
	Timezone      string       `json:"timezone,omitempty"`
}

type OrderSource struct {
	Name string `json:"name,omitempty"`
}

type ServiceCharge struct {
	Name       string `json:"name,omitempty"`
	TotalMoney *Money `json:"total_money,omitempty"`
}

type LineItem struct {
	Name       string `json:"name,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	TotalMoney *Money `json:"total_money,omitempty"`
}

type Refund struct {
	ID          string `json:"id,omitempty"`
	Status      string `json:"status,omitempty"`
	AmountMoney *Money `json:"amount_money,omitempty"`
}

type RoundingAdjustment struct {
	Name        string `json:"name,omitempty"`
	AmountMoney *Money `json:"amount_money,omitempty"`
}

type Order struct {
	ID                 string              `json:"id,omitempty"`
	LocationID         string              `json:"location_id,omitempty"`
	State              string              `json:"state,omitempty"`
	ClosedAt           string              `json:"closed_at,omitempty"`
	TotalMoney         *Money              `json:"total_money,omitempty"`
	TotalDiscountMoney *Money              `json:"total_discount_money,omitempty"`
	TotalTaxMoney      *Money              `json:"total_tax_money,omitempty"`
	TotalTipMoney      *Money              `json:"total_tip_money,omitempty"`
	RoundingAdjustment *RoundingAdjustment `json:"rounding_adjustment,omitempty"`
	ServiceCharges     []ServiceCharge     `json:"service_charges,omitempty"`
	LineItems          []LineItem          `json:"line_items,omitempty"`
	Refunds            []Refund            `json:"refunds,omitempty"`
	Source             *OrderSource        `json:"source,omitempty"`
}

type ProcessingFee struct {
	Type        string `json:"type,omitempty"`
	AmountMoney *Money `json:"amount_money,omitempty"`
}

type ExternalDetails struct {
	Type   string `json:"type,omitempty"`
	Source string `json:"source,omitempty"`
}

type Payment struct {
	ID              string           `json:"id,omitempty"`
	LocationID      string           `json:"location_id,omitempty"`
	Status          string           `json:"status,omitempty"`
	AmountMoney     *Money           `json:"amount_money,omitempty"`
	ProcessingFee   []ProcessingFee  `json:"processing_fee,omitempty"`
	SourceType      string           `json:"source_type,omitempty"`
	ExternalDetails *ExternalDetails `json:"external_details,omitempty"`
}

type errorDetail struct {
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

type listLocationsResponse struct {
	Locations []Location    `json:"locations,omitempty"`
	Errors    []errorDetail `json:"errors,omitempty"`
}

type retrieveLocationResponse struct {
	Location Location      `json:"location,omitempty"`
	Errors   []errorDetail `json:"errors,omitempty"`
}

type searchOrdersResponse struct {
	Orders []Order       `json:"orders,omitempty"`
	Cursor string        `json:"cursor,omitempty"`
	Errors []errorDetail `json:"errors,omitempty"`
}

type listPaymentsResponse struct {
	Payments []Payment     `json:"payments,omitempty"`
	Cursor   string        `json:"cursor,omitempty"`
	Errors   []errorDetail `json:"errors,omitempty"`
}

type timeRange struct {
	StartAt string `json:"start_at,omitempty"`
	EndAt   string `json:"end_at,omitempty"`
}

type dateTimeFilter struct {
	ClosedAt *timeRange `json:"closed_at,omitempty"`
}

type stateFilter struct {
	States []string `json:"states,omitempty"`
}

type searchOrdersFilter struct {
	DateTimeFilter *dateTimeFilter `json:"date_time_filter,omitempty"`
	StateFilter    *stateFilter    `json:"state_filter,omitempty"`
}

type searchOrdersSort struct {
	SortField string `json:"sort_field,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

type searchOrdersQuery struct {
	Filter *searchOrdersFilter `json:"filter,omitempty"`
	Sort   *searchOrdersSort   `json:"sort,omitempty"`
}

type searchOrdersRequest struct {
	LocationIDs []string           `json:"location_ids,omitempty"`
	Cursor      string             `json:"cursor,omitempty"`
	Limit       int                `json:"limit,omitempty"`
	Query       *searchOrdersQuery `json:"query,omitempty"`
}
