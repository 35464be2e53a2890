package repository

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestDetails(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "method", "url", "headers", "body"}).
					AddRow("request-1", "POST", "https://api.example.com/orders", []byte(`{"Authorization":"Bearer x"}`), `{"sku":1}`)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","method","url","headers","body" FROM "requests" WHERE id = $1`)).
					WithArgs("request-1", 1).
					WillReturnRows(rows)
			},
		},
		{
			name: "Error Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM "requests" WHERE id = $1`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedError: apperrors.ErrRequestNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewRequestRepository(db)
			tc.mockSetup(mock)

			request, err := repo.GetRequestDetails(context.Background(), "request-1")
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "POST", request.Method)
				assert.Equal(t, `{"sku":1}`, request.Body)
				headers, e := request.HeaderMap()
				require.NoError(t, e)
				assert.Equal(t, "Bearer x", headers["Authorization"])
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
