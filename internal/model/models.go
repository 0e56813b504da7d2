package model

// FranchiseAddress is the flattened address shape served to the front end.
type FranchiseAddress struct {
	AddressLine1 string  `json:"addressLine1,omitempty"`
	AddressLine2 string  `json:"addressLine2,omitempty"`
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	PostalCode   string  `json:"postalCode,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// FranchiseSummary is the presentation projection of a Square location.
type FranchiseSummary struct {
	ID      string           `json:"id"`
	Name    string           `json:"name,omitempty"`
	Address FranchiseAddress `json:"address"`
	Email   string           `json:"email,omitempty"`
}

// SalesSummary aggregates one location's orders and payments over a date
// range. Every field is in major currency units (dollars); the aggregation
// itself runs in integer cents and converts exactly once at the boundary.
type SalesSummary struct {
	GrossSales          float64            `json:"grossSales"`
	Items               float64            `json:"items"`
	ServiceCharges      float64            `json:"serviceCharges"`
	Returns             float64            `json:"returns"`
	Discounts           float64            `json:"discounts"`
	NetSales            float64            `json:"netSales"`
	Taxes               float64            `json:"taxes"`
	Tips                float64            `json:"tips"`
	RoundingAdjustments float64            `json:"roundingAdjustments"`
	GiftCardSales       float64            `json:"giftCardSales"`
	TotalCollected      float64            `json:"totalCollected"`
	Cash                float64            `json:"cash"`
	Card                float64            `json:"card"`
	GiftCard            float64            `json:"giftCard"`
	Other               float64            `json:"other"`
	ChannelRevenue      map[string]float64 `json:"channelRevenue"`
	ExternalSources     map[string]float64 `json:"externalSources"`
	Fees                float64            `json:"fees"`
	NetTotal            float64            `json:"netTotal"`
	Royalties           float64            `json:"royalties"`
	MarketingFees       float64            `json:"marketingFees"`
}
