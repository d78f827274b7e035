package importer

import (
	"fmt"
	"io"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/importer/statement"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

type Service struct {
	statementImporter Importer
}

func NewService() *Service {
	return &Service{
		statementImporter: statement.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.RecordParams, error) {
	var imp Importer

	switch format {
	case FormatStatement:
		imp = s.statementImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return imp.Parse(r)
}
