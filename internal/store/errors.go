package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/mattn/go-sqlite3"
)

// mapError translates driver errors into apperr kinds and leaves everything else untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", apperr.ErrAlreadyExists, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: referenced class: %v", apperr.ErrNotFound, err)
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
		}
	}
	return err
}

// requireAffected turns an update or delete that touched nothing into ErrNotFound.
func requireAffected(res sql.Result, err error) error {
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
