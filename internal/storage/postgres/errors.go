package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeForeignKeyViolation = "23503"
	codeValueTooLong        = "22001"
	codeInvalidText         = "22P02"
)

// IsForeignKeyViolation reports whether err is a referential integrity failure,
// i.e. the referenced parent row does not exist.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// IsValueTooLong reports a string that exceeds its VARCHAR column.
func IsValueTooLong(err error) bool {
	return hasCode(err, codeValueTooLong)
}

// IsInvalidText reports a malformed literal such as a bad uuid.
func IsInvalidText(err error) bool {
	return hasCode(err, codeInvalidText)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
