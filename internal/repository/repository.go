// Package repository holds every SQL statement the service issues against the foods table.
package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Executor runs parameterized statements and yields rows. *sqlx.DB (the shared pool) and
// *sqlx.Tx both satisfy it, so repository functions work inside or outside a transaction.
type Executor interface {
	sqlx.ExtContext
}

// StorageError reports a failed statement. The driver error is kept intact for errors.Is/As.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
