package metric_indexer

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/repository"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"
)

const metricIndexMapping = `{
  "mappings": {
    "properties": {
      "id":               { "type": "keyword" },
      "monitor_id":       { "type": "keyword" },
      "status_code":      { "type": "integer" },
      "response_time_ms": { "type": "long" },
      "success":          { "type": "boolean" },
      "success_numeric":  { "type": "integer" },
      "error":            { "type": "text" },
      "timestamp":        { "type": "date" }
    }
  }
}`

type MetricIndexer interface {
	// EnsureIndex creates the metric index with its mapping when it does not exist yet.
	EnsureIndex(ctx context.Context) error
	Index(ctx context.Context, event model.MetricEvent) error
}

type esMetricIndexer struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func (e *esMetricIndexer) EnsureIndex(ctx context.Context) error {
	res, err := e.es.Indices.Exists([]string{repository.MetricIndexName}, e.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("MetricIndexer.EnsureIndex: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = e.es.Indices.Create(repository.MetricIndexName,
		e.es.Indices.Create.WithContext(ctx),
		e.es.Indices.Create.WithBody(strings.NewReader(metricIndexMapping)))
	if err != nil {
		return fmt.Errorf("MetricIndexer.EnsureIndex: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		esErr := decodeError(res)
		// another indexer instance won the race
		if esErr.Type == "resource_already_exists_exception" {
			return nil
		}
		return fmt.Errorf("MetricIndexer.EnsureIndex: %w", esErr)
	}
	return nil
}

// Index uses the event id as document id, so redelivered messages overwrite instead of duplicating.
func (e *esMetricIndexer) Index(ctx context.Context, event model.MetricEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("MetricIndexer.Index: %w", err)
	}
	res, err := e.es.Index(repository.MetricIndexName, bytes.NewReader(body),
		e.es.Index.WithContext(ctx),
		e.es.Index.WithDocumentID(event.ID))
	if err != nil {
		return fmt.Errorf("MetricIndexer.Index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("MetricIndexer.Index: %w", decodeError(res))
	}
	return nil
}

func decodeError(res *esapi.Response) *apperrors.ElasticSearchError {
	var e esErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
		return &apperrors.ElasticSearchError{StatusCode: res.StatusCode, Type: "unknown", Reason: res.Status()}
	}
	return &apperrors.ElasticSearchError{StatusCode: res.StatusCode, Type: e.Error.Type, Reason: e.Error.Reason}
}

func NewMetricIndexer(esClient *elasticsearch.Client) MetricIndexer {
	return &esMetricIndexer{
		es: esClient,
	}
}
