package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUp(t *testing.T) {
	migrations, err := Up()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, "000001_init", migrations[0].Version)
	assert.Contains(t, migrations[0].SQL, "CONSTRAINT monitors_request_id_fkey")
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestApply(t *testing.T) {
	testErr := errors.New("test error")

	testCases := []struct {
		name            string
		setupMocks      func(mock sqlmock.Sqlmock)
		expectedApplied []string
		expectErr       bool
	}{
		{
			name: "fresh database",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT "version" FROM "schema_migrations"`)).
					WillReturnRows(sqlmock.NewRows([]string{"version"}))
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("CREATE EXTENSION IF NOT EXISTS pgcrypto")).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")).
					WithArgs("000001_init").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedApplied: []string{"000001_init"},
		},
		{
			name: "already up to date",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT "version" FROM "schema_migrations"`)).
					WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("000001_init"))
			},
		},
		{
			name: "failed migration is rolled back",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT "version" FROM "schema_migrations"`)).
					WillReturnRows(sqlmock.NewRows([]string{"version"}))
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("CREATE EXTENSION IF NOT EXISTS pgcrypto")).WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			tc.setupMocks(mock)

			applied, err := Apply(context.Background(), db)
			if tc.expectErr {
				assert.ErrorIs(t, err, testErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedApplied, applied)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
