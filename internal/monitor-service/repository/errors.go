package repository

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// wrapDBError maps postgres errors that callers act on to sentinel errors.
func wrapDBError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedColumn, pgerrcode.UndefinedTable:
			return fmt.Errorf("%s: %w: %s", op, apperrors.ErrSchemaOutdated, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
