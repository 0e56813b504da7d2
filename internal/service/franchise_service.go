package service

import (
	"context"
	"fmt"

	"github.com/justinsenglish/crave.api/internal/model"
	"github.com/justinsenglish/crave.api/internal/square"
)

type FranchiseService struct {
	gw Gateway
}

func NewFranchiseService(gw Gateway) *FranchiseService {
	return &FranchiseService{gw: gw}
}

// ListFranchises returns every active location as a presentation summary.
func (s *FranchiseService) ListFranchises(ctx context.Context) ([]model.FranchiseSummary, error) {
	locations, err := s.gw.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	franchises := make([]model.FranchiseSummary, len(locations))
	for i, loc := range locations {
		franchises[i] = toFranchiseSummary(loc)
	}

	return franchises, nil
}

func (s *FranchiseService) GetFranchise(ctx context.Context, locationID string) (model.FranchiseSummary, error) {
	loc, err := s.gw.GetLocation(ctx, locationID)
	if err != nil {
		return model.FranchiseSummary{}, fmt.Errorf("get location %s: %w", locationID, err)
	}

	return toFranchiseSummary(loc), nil
}

// toFranchiseSummary is a pure projection; absent vendor fields stay
// zero-valued and are dropped from the JSON output.
func toFranchiseSummary(loc square.Location) model.FranchiseSummary {
	summary := model.FranchiseSummary{
		ID:    loc.ID,
		Name:  loc.Name,
		Email: loc.BusinessEmail,
	}

	if loc.Address != nil {
		summary.Address.AddressLine1 = loc.Address.AddressLine1
		summary.Address.AddressLine2 = loc.Address.AddressLine2
		summary.Address.City = loc.Address.Locality
		summary.Address.State = loc.Address.AdministrativeDistrictLevel1
		summary.Address.PostalCode = loc.Address.PostalCode
	}

	if loc.Coordinates != nil {
		summary.Address.Latitude = loc.Coordinates.Latitude
		summary.Address.Longitude = loc.Coordinates.Longitude
	}

	return summary
}
