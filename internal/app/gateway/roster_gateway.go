package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"schooladmin/internal/app/models"
)

// RosterGateway fetches externally-owned student records for a class from a
// remote roster service. The fetch is best-effort: any failure (timeout,
// network error, non-success response, malformed body) degrades to an empty
// result instead of propagating, so external unavailability can never fail a
// listing request.
type RosterGateway struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewRosterGateway creates a gateway against the given base URL. The timeout
// bounds the whole fetch and therefore the listing path's worst-case latency.
func NewRosterGateway(baseURL string, timeout time.Duration, logger zerolog.Logger) *RosterGateway {
	return &RosterGateway{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// studentListPayload mirrors the remote service's listing response.
type studentListPayload struct {
	Count    int                  `json:"count"`
	Students []models.RosterEntry `json:"students"`
}

// FetchStudents retrieves the external student list for a class within the
// requested window. Returns an empty slice on any failure.
func (g *RosterGateway) FetchStudents(ctx context.Context, classCode string, offset, limit int) []models.RosterEntry {
	params := url.Values{}
	params.Set("class", classCode)
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/students?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		g.logger.Warn().Err(err).Str("classCode", classCode).Msg("Failed to build external roster request")
		return nil
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn().Err(err).Str("classCode", classCode).Msg("Failed to fetch external students")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warn().Int("status", resp.StatusCode).Str("classCode", classCode).Msg("External roster returned non-success status")
		return nil
	}

	var payload studentListPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		g.logger.Warn().Err(err).Str("classCode", classCode).Msg("Failed to decode external roster response")
		return nil
	}

	return payload.Students
}
