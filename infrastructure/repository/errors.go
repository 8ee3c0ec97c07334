package repository

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDuplicate indica violação de unicidade
var ErrDuplicate = errors.New("registro duplicado")

const uniqueViolation = "23505"

// translateError converte violações de unicidade do Postgres em ErrDuplicate
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}
