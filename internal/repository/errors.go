package repository

import (
	"errors"
	"fmt"

	domainRepo "github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// translate maps engine-level errors onto the store taxonomy so that
// usecases never depend on gorm or driver error types. Unknown errors
// are wrapped as ErrTransactionFailed with the cause preserved in the
// message.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainRepo.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainRepo.ErrDuplicateKey
	}

	// The gorm sqlite driver translates most constraint violations, but
	// raw driver errors can still escape on some code paths. Only
	// uniqueness violations mean a duplicate; other constraint classes
	// (NOT NULL, CHECK, foreign key) fall through.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return domainRepo.ErrDuplicateKey
		}
	}

	return fmt.Errorf("%w: %v", domainRepo.ErrTransactionFailed, err)
}
