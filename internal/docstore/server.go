package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ServerSource reads documents from the remote document API over HTTP:
//
//	GET {base}/v1/{collection}?field=value&rangeField=date&from=...&to=...
//
// responding with {"documents": [{"id": ..., "fields": {...}}, ...]}.
type ServerSource struct {
	baseURL string
	client  *http.Client
}

func NewServerSource(baseURL string) *ServerSource {
	return &ServerSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ServerSource) Name() string { return "server" }

func (s *ServerSource) Fetch(ctx context.Context, q Query) ([]Document, error) {
	if q.Collection == "" {
		return nil, errors.New("empty collection name")
	}

	u, err := url.Parse(fmt.Sprintf("%s/v1/%s", s.baseURL, url.PathEscape(q.Collection)))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	if q.ID != "" {
		params.Set("id", q.ID)
	}
	for key, value := range q.Filters {
		params.Set(key, value)
	}
	if q.TimeField != "" {
		params.Set("rangeField", q.TimeField)
		if !q.From.IsZero() {
			params.Set("from", q.From.Format(time.RFC3339))
		}
		if !q.To.IsZero() {
			params.Set("to", q.To.Format(time.RFC3339))
		}
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document api returned %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Documents []Document `json:"documents"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode document api response: %w", err)
	}

	return result.Documents, nil
}
