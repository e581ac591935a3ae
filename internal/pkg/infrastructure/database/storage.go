package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNoRows       = errors.New("no rows in result set")
	ErrStoreFailed  = errors.New("could not store data")
	ErrAlreadyExist = errors.New("already exists")
	ErrUnknownRef   = errors.New("referenced device does not exist")
)

type Storage struct {
	db *gorm.DB
}

// New connects using the supplied connector and migrates the schema.
func New(ctx context.Context, connect ConnectorFunc) (*Storage, error) {
	db, err := connect()
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).AutoMigrate(&device{}, &telemetryRecord{}, &condition{}, &alertLog{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	sqldb, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}

// translate maps driver and gorm errors onto the package errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNoRows
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", ErrAlreadyExist, err.Error())
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(strings.ToLower(err.Error()), "foreign key constraint"):
		return fmt.Errorf("%w: %s", ErrUnknownRef, err.Error())
	}

	return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
}
