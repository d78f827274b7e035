package importer

import (
	"io"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

// Format names a supported statement file layout.
type Format string

const (
	FormatStatement Format = "statement"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.RecordParams, error)
}
