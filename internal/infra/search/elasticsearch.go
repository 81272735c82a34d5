// Package search provides the Elasticsearch implementation of the full-text
// search port. The index is maintained externally; this adapter only queries.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"souk/config"
	"souk/internal/domain/repository"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/pkg/errors"
)

// NewClient creates the shared Elasticsearch client. Returns nil when search
// is disabled in config; consumers must tolerate a nil port.
func NewClient(cfg *config.Config, logger *slog.Logger) (*elasticsearch.Client, error) {
	if !cfg.Search.Enabled {
		logger.Info("elasticsearch disabled; search endpoints will return empty results")

		return nil, nil
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Search.Addresses,
		Username:  cfg.Search.Username,
		Password:  cfg.Search.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create elasticsearch client")
	}

	return client, nil
}

// esSearch adapts an Elasticsearch client to the generic search port for one
// document type and index.
type esSearch[V any] struct {
	client *elasticsearch.Client
	index  string
}

// New builds a typed search port over a shared client. A nil client yields a
// nil port.
func New[V any](client *elasticsearch.Client, index string) repository.Search[V] {
	if client == nil {
		return nil
	}

	return &esSearch[V]{client: client, index: index}
}

type esHits[V any] struct {
	Hits struct {
		Hits []struct {
			Source *V `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs a multi-field free-text query and returns the matched
// documents.
func (s *esSearch[V]) Search(ctx context.Context, query string, limit int) ([]*V, error) {
	body := map[string]any{
		"size": limit,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fuzziness": "AUTO",
			},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal search query")
	}

	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(raw),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, errors.Wrap(err, "execute search")
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.Errorf("search failed: %s", res.Status())
	}

	var parsed esHits[V]
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	results := make([]*V, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		results = append(results, hit.Source)
	}

	return results, nil
}
