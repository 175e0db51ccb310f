// internal/adapters/osrm/client.go
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

const DefaultBaseURL = "http://router.project-osrm.org"

// Client asks an OSRM server for driving routes.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: &http.Client{Timeout: timeout}}
}

var _ ports.RoutePort = (*Client)(nil)

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func lonLat(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}

// Route returns the polyline of the first driving route from one point to another.
func (c *Client) Route(ctx context.Context, from, to domain.Coordinate) ([]domain.Coordinate, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%s;%s?overview=full&geometries=geojson", c.baseURL, lonLat(from), lonLat(to))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: route: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &domain.APIError{Op: "route", StatusCode: resp.StatusCode, Message: "Erro ao calcular rota: " + strings.TrimSpace(string(body))}
	}

	var rr routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("%w: route: %v", domain.ErrMalformedResponse, err)
	}
	if rr.Code != "Ok" || len(rr.Routes) == 0 {
		return nil, &domain.APIError{Op: "route", StatusCode: resp.StatusCode, Message: "Nenhuma rota encontrada"}
	}

	coords := rr.Routes[0].Geometry.Coordinates
	out := make([]domain.Coordinate, 0, len(coords))
	for _, p := range coords {
		if len(p) < 2 {
			return nil, fmt.Errorf("%w: route: short coordinate", domain.ErrMalformedResponse)
		}
		out = append(out, domain.Coordinate{Latitude: p[1], Longitude: p[0]})
	}
	return out, nil
}
