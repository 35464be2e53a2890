package repository

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

// MetricIndexName is shared with the metric indexer.
const MetricIndexName = "monitor_metrics"

type MetricSearchRepository interface {
	GetMonitorUptimePercentage(ctx context.Context, monitorID string, startTime time.Time, endTime time.Time) (float64, error)
}

type metricSearchRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value *float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

// GetMonitorUptimePercentage returns the share of healthy probes in [startTime, endTime) as a percentage.
// A window without probes reports 0.
func (m *metricSearchRepository) GetMonitorUptimePercentage(ctx context.Context, monitorID string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"monitor_id": monitorID,
						},
					},
					{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "success_numeric",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("MetricSearchRepo.GetMonitorUptimePercentage encode query: %w", err)
	}
	res, err := m.es.Search(
		m.es.Search.WithContext(ctx),
		m.es.Search.WithIndex(MetricIndexName),
		m.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("MetricSearchRepo.GetMonitorUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return 0, fmt.Errorf("MetricSearchRepo.GetMonitorUptimePercentage decode err response: %w", err)
		}
		return 0, fmt.Errorf("MetricSearchRepo.GetMonitorUptimePercentage: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("MetricSearchRepo.GetMonitorUptimePercentage decode response: %w", err)
	}
	if uptimeResponse.Aggregations.UptimePercentage.Value == nil {
		return 0, nil
	}
	return *uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

func NewMetricSearchRepository(esClient *elasticsearch.Client) MetricSearchRepository {
	return &metricSearchRepository{
		es: esClient,
	}
}
