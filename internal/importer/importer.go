// Package importer parses bank CSV exports into transactions.
//
// The format is semicolon separated with a fixed header:
//
//	fecha;descripcion;categoria;importe
//
// A broken row never aborts the batch, it is reported per line
// instead. Rows that hash to an already seen row are counted as
// duplicates and skipped.
package importer

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/money"
	"github.com/vedor-app/backend/internal/types"
)

var header = []string{"fecha", "descripcion", "categoria", "importe"}

// RowError reports one unparseable CSV row.
type RowError struct {
	Line    int    `json:"line" example:"3"`                        // 1-based line number in the input
	Message string `json:"message" example:"invalid date: \"azul\""` // What went wrong
	RawLine string `json:"rawLine" example:"azul;Compra;;-12,30"`    // The offending line, verbatim
}

// Result is the outcome of parsing one CSV file.
type Result struct {
	Transactions   []models.Transaction `json:"transactions"`            // Parsed rows, in input order
	DuplicateCount int                  `json:"duplicateCount" example:"1"` // Rows skipped as in-batch duplicates
	Errors         []RowError           `json:"errors"`                  // Rows that could not be parsed
}

// Parse reads the whole CSV input. Empty input parses to an empty
// result. A wrong header is reported as a single error on line 1 and
// no rows are parsed.
func Parse(content string) Result {
	var result Result

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	headerAt := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerAt = i
			break
		}
	}
	if headerAt == -1 {
		return result
	}

	if err := checkHeader(lines[headerAt]); err != nil {
		result.Errors = append(result.Errors, RowError{
			Line:    headerAt + 1,
			Message: err.Error(),
			RawLine: lines[headerAt],
		})

		return result
	}

	seen := make(map[string]bool)
	for i := headerAt + 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}

		transaction, err := parseRow(line)
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Line:    i + 1,
				Message: err.Error(),
				RawLine: line,
			})

			continue
		}

		if seen[transaction.ImportHash] {
			result.DuplicateCount++
			continue
		}
		seen[transaction.ImportHash] = true

		result.Transactions = append(result.Transactions, transaction)
	}

	return result
}

// checkHeader verifies name, count and order of the header columns.
// Names are compared case-insensitively.
func checkHeader(line string) error {
	cells := strings.Split(line, ";")
	if len(cells) != len(header) {
		return fmt.Errorf("expected %d header columns, got %d", len(header), len(cells))
	}

	for i, cell := range cells {
		if !strings.EqualFold(strings.TrimSpace(cell), header[i]) {
			return fmt.Errorf("expected header column %q, got %q", header[i], strings.TrimSpace(cell))
		}
	}

	return nil
}

func parseRow(line string) (models.Transaction, error) {
	cells := strings.Split(line, ";")
	if len(cells) != len(header) {
		return models.Transaction{}, fmt.Errorf("expected %d columns, got %d", len(header), len(cells))
	}

	date, err := types.ParseDate(strings.TrimSpace(cells[0]))
	if err != nil {
		return models.Transaction{}, err
	}

	description := strings.TrimSpace(cells[1])
	if description == "" {
		return models.Transaction{}, models.ErrDescriptionRequired
	}
	if len([]rune(description)) > models.DescriptionMaxLength {
		return models.Transaction{}, models.ErrDescriptionTooLong
	}

	amount, err := money.Parse(strings.TrimSpace(cells[3]))
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		TransactionEditable: models.TransactionEditable{
			Date:        date,
			Description: description,
			CategoryID:  strings.TrimSpace(cells[2]),
			Amount:      amount,
		},
	}
	transaction.ImportHash = Hash(transaction)

	return transaction, nil
}

// Hash derives the content hash used for duplicate detection, both
// in-batch and against already stored transactions. Two rows with the
// same date, description (ignoring case) and amount hash equal.
func Hash(t models.Transaction) string {
	input := strings.Join([]string{
		t.Date.Format(),
		strings.ToLower(strings.TrimSpace(t.Description)),
		t.Amount.String(),
	}, "|")

	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// ExampleCSV returns a small valid input demonstrating the format.
func ExampleCSV() string {
	return strings.Join([]string{
		"fecha;descripcion;categoria;importe",
		"01/01/2024;Nómina enero;;2500,00",
		"05/01/2024;Supermercado Dia;;-85,50",
		"12/01/2024;Farmacia;;-12,30",
		"20/01/2024;Restaurante La Plaza;;-45,80",
		"",
	}, "\n")
}
