package recorder

import (
	mockrepository "VCS_API_Monitor/internal/monitor-service/mocks/repository"
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetricRecorder_Record(t *testing.T) {
	status := 503
	errMsg := "Server error"
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	metric := model.Metric{MonitorID: "monitor-1", StatusCode: &status, ResponseTimeMs: 80, Success: false, ErrorMessage: &errMsg}
	saved := metric
	saved.ID = 11
	saved.CreatedAt = createdAt
	dbErr := errors.New("db down")

	testCases := []struct {
		name        string
		setupMocks  func(repo *mockrepository.MockMetricRepository, writer *infra.MockKafkaWriter)
		expectedErr error
	}{
		{
			name: "stored and published",
			setupMocks: func(repo *mockrepository.MockMetricRepository, writer *infra.MockKafkaWriter) {
				repo.EXPECT().CreateMetric(gomock.Any(), metric).Return(saved, nil)
				writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
						require.Len(t, msgs, 1)
						assert.Equal(t, "monitor-1", string(msgs[0].Key))
						var event model.MetricEvent
						require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
						assert.Equal(t, 503, event.StatusCode)
						assert.Equal(t, 0, event.SuccessNumeric)
						assert.Equal(t, "Server error", event.Error)
						assert.True(t, createdAt.Equal(event.Timestamp))
						assert.NotEmpty(t, event.ID)
						return nil
					})
			},
		},
		{
			name: "publish failure does not fail record",
			setupMocks: func(repo *mockrepository.MockMetricRepository, writer *infra.MockKafkaWriter) {
				repo.EXPECT().CreateMetric(gomock.Any(), metric).Return(saved, nil)
				writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
			},
		},
		{
			name: "store failure propagates and nothing is published",
			setupMocks: func(repo *mockrepository.MockMetricRepository, writer *infra.MockKafkaWriter) {
				repo.EXPECT().CreateMetric(gomock.Any(), metric).Return(model.Metric{}, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mockrepository.NewMockMetricRepository(ctrl)
			writer := infra.NewMockKafkaWriter(ctrl)
			tc.setupMocks(repo, writer)

			err := NewMetricRecorder(repo, writer, zap.NewNop()).Record(context.Background(), metric)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewMetricEvent(t *testing.T) {
	status := 200
	event := NewMetricEvent(model.Metric{MonitorID: "monitor-1", StatusCode: &status, ResponseTimeMs: 35, Success: true})
	assert.Equal(t, 1, event.SuccessNumeric)
	assert.Equal(t, 200, event.StatusCode)
	assert.False(t, event.Timestamp.IsZero())
	assert.Empty(t, event.Error)

	event = NewMetricEvent(model.Metric{MonitorID: "monitor-1"})
	assert.Equal(t, 0, event.StatusCode)
	assert.Equal(t, 0, event.SuccessNumeric)
}

func TestAlertIssuer_CreateAlert(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mockrepository.NewMockAlertRepository(ctrl)
		repo.EXPECT().CreateAlert(gomock.Any(), model.Alert{MonitorID: "monitor-1", Message: "Server error: HTTP 500", Severity: model.SeverityError}).
			Return(model.Alert{ID: 3, MonitorID: "monitor-1", Message: "Server error: HTTP 500", Severity: model.SeverityError}, nil)

		alert := NewAlertIssuer(repo, zap.NewNop()).CreateAlert(context.Background(), "monitor-1", "Server error: HTTP 500", model.SeverityError)
		require.NotNil(t, alert)
		assert.Equal(t, int64(3), alert.ID)
	})
	t.Run("store failure is swallowed and logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mockrepository.NewMockAlertRepository(ctrl)
		repo.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(model.Alert{}, errors.New("db down"))
		core, logs := observer.New(zap.ErrorLevel)

		alert := NewAlertIssuer(repo, zap.New(core)).CreateAlert(context.Background(), "monitor-1", "Request failed: timeout", model.SeverityError)
		assert.Nil(t, alert)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "failed to create alert", logs.All()[0].Message)
	})
}
