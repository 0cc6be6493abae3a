package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a statement matched or affected no rows.
var ErrNotFound = errors.New("record not found")

// translate maps pgx's no-rows error onto ErrNotFound and passes everything else through.
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
