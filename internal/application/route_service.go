// internal/application/route_service.go
package application

import (
	"context"
	"log"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

type Route struct {
	Campaign   domain.Campaign     `json:"campaign"`
	DistanceKm float64             `json:"distance_km"`
	Path       []domain.Coordinate `json:"path"`
}

type RouteService struct {
	router    ports.RoutePort
	campaigns *CampaignService
}

func NewRouteService(router ports.RoutePort, campaigns *CampaignService) *RouteService {
	return &RouteService{router: router, campaigns: campaigns}
}

// ToCampaign plans a driving route from origin to a located campaign. When
// the router fails the straight segment is returned instead.
func (s *RouteService) ToCampaign(ctx context.Context, origin domain.Coordinate, campaignID string) (*Route, error) {
	if !origin.Valid() {
		return nil, domain.Invalid("origin", "Localização atual indisponível")
	}
	c, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.HasLocation() {
		return nil, domain.Invalid("location", "Esta campanha não possui localização.")
	}
	dest := *c.Location
	r := &Route{Campaign: *c, DistanceKm: distanceTo(origin, dest)}
	if s.router != nil {
		path, err := s.router.Route(ctx, origin, dest)
		if err == nil && len(path) > 0 {
			r.Path = path
			return r, nil
		}
		if err != nil {
			log.Printf("route: campaign %s: falling back to straight line: %v", campaignID, err)
		}
	}
	r.Path = []domain.Coordinate{origin, dest}
	return r, nil
}
