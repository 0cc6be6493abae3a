package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/repository"
)

// logFailure records a failed repository call. Not-found results are expected
// outcomes and are not logged.
func logFailure(log zerolog.Logger, err error, op string, id int) {
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return
	}

	evt := log.Error().Err(err).Str("op", op)
	if id != 0 {
		evt = evt.Int("id", id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		evt = evt.Str("sqlstate", pgErr.Code).Str("constraint", pgErr.ConstraintName)
	}
	evt.Msg("database operation failed")
}
