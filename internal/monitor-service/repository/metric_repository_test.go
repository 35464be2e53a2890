package repository

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMetric(t *testing.T) {
	status := 200
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "metrics" ("monitor_id","status_code","response_time_ms","success","error_message","created_at") VALUES ($1,$2,$3,$4,$5,$6) RETURNING "id"`)).
					WithArgs("monitor-1", 200, int64(120), true, nil, sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Missing Table",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "metrics"`)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrSchemaOutdated,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewMetricRepository(db)
			tc.mockSetup(mock)

			metric, err := repo.CreateMetric(context.Background(), model.Metric{
				MonitorID:      "monitor-1",
				StatusCode:     &status,
				ResponseTimeMs: 120,
				Success:        true,
			})
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(42), metric.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMetricsByMonitorId(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMetricRepository(db)

	rows := sqlmock.NewRows([]string{"id", "monitor_id", "status_code", "success"}).
		AddRow(int64(2), "monitor-1", 500, false).
		AddRow(int64(1), "monitor-1", nil, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "metrics" WHERE monitor_id = $1 ORDER BY created_at desc LIMIT $2`)).
		WithArgs("monitor-1", 50).
		WillReturnRows(rows)

	metrics, err := repo.GetMetricsByMonitorId(context.Background(), "monitor-1", 50)
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	require.NotNil(t, metrics[0].StatusCode)
	assert.Equal(t, 500, *metrics[0].StatusCode)
	assert.Nil(t, metrics[1].StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestMetricByMonitorId(t *testing.T) {
	t.Run("latest row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewMetricRepository(db)
		rows := sqlmock.NewRows([]string{"id", "monitor_id", "error_message"}).AddRow(int64(9), "monitor-1", "connection refused")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "metrics" WHERE monitor_id = $1 ORDER BY created_at desc LIMIT $2`)).
			WithArgs("monitor-1", 1).
			WillReturnRows(rows)

		metric, err := repo.GetLatestMetricByMonitorId(context.Background(), "monitor-1")
		require.NoError(t, err)
		require.NotNil(t, metric)
		require.NotNil(t, metric.ErrorMessage)
		assert.Equal(t, "connection refused", *metric.ErrorMessage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("no rows", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewMetricRepository(db)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "metrics"`)).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		metric, err := repo.GetLatestMetricByMonitorId(context.Background(), "monitor-1")
		require.NoError(t, err)
		assert.Nil(t, metric)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteMetricsOlderThan(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMetricRepository(db)
	cutoff := time.Date(2026, 2, 1, 3, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "metrics" WHERE created_at < $1`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 1200))
	mock.ExpectCommit()

	deleted, err := repo.DeleteMetricsOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
