package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"congressprogram/internal/domain"
)

type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a ProgramFeedFetcher that downloads a JSON program
// feed over HTTP.
func NewHTTPFetcher(client *http.Client) domain.ProgramFeedFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (domain.FeedDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.FeedDocument{}, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return domain.FeedDocument{}, fmt.Errorf("failed to fetch program feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.FeedDocument{}, fmt.Errorf("program feed returned status: %d", resp.StatusCode)
	}

	var doc domain.FeedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return domain.FeedDocument{}, fmt.Errorf("failed to decode program feed: %w", err)
	}
	return doc, nil
}
