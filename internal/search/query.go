package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Skotchmaster/sims/internal/models"
)

// ErrIndexMissing means nothing has been mirrored into the index yet.
var ErrIndexMissing = errors.New("index not found")

// SearchItems runs a fuzzy multi_match over name and description.
func (ix *Indexer) SearchItems(ctx context.Context, query string, size int) ([]models.Item, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("es: encode query: %w", err)
	}

	res, err := ix.client.Search(
		ix.client.Search.WithContext(ctx),
		ix.client.Search.WithIndex(ix.index),
		ix.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("es: search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("es: search %s: %w", ix.index, ErrIndexMissing)
	}
	if res.IsError() {
		return nil, fmt.Errorf("es: search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Item `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("es: decode response: %w", err)
	}

	items := make([]models.Item, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return items, nil
}
