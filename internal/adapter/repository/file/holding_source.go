package file

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/simaogato/worth-backend/internal/domain"
)

// Required CSV columns
const (
	columnValue    = "value"
	columnQuantity = "quantity"
	columnKind     = "kind"
)

// HoldingSource implements domain.HoldingSource over a user-supplied CSV or JSON file
type HoldingSource struct {
	path string
}

// NewHoldingSource creates a new file-backed holding source.
// The format is chosen from the file extension (.csv or .json).
func NewHoldingSource(path string) *HoldingSource {
	return &HoldingSource{path: path}
}

var _ domain.HoldingSource = (*HoldingSource)(nil)

// Holdings reads and constructs every holding in the file.
// A single malformed entry fails the whole load.
func (s *HoldingSource) Holdings(ctx context.Context) ([]domain.Holding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var decode func(io.Reader) ([]domain.Holding, error)
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".csv":
		decode = DecodeCSV
	case ".json":
		decode = DecodeJSON
	default:
		return nil, fmt.Errorf("unsupported holdings file format %q: must be .csv or .json", ext)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holdings file: %w", err)
	}
	defer f.Close()

	holdings, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read holdings from %s: %w", s.path, err)
	}

	return holdings, nil
}

// DecodeCSV reads holdings from CSV with a value,quantity,kind header.
// Header names are case-insensitive and may appear in any order; extra
// columns are ignored. A required column may appear only once.
func DecodeCSV(r io.Reader) ([]domain.Holding, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing CSV header")
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	requiredColumns := []string{columnValue, columnQuantity, columnKind}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := columns[name]; seen && slices.Contains(requiredColumns, name) {
			return nil, fmt.Errorf("CSV header has duplicate %q column", name)
		}
		columns[name] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV header must have a %q column", required)
		}
	}

	holdings := make([]domain.Holding, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		holding, err := domain.ParseHolding(
			strings.TrimSpace(record[columns[columnValue]]),
			strings.TrimSpace(record[columns[columnQuantity]]),
			record[columns[columnKind]],
		)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		holdings = append(holdings, holding)
	}

	return holdings, nil
}

// jsonHolding is the wire shape of one JSON entry.
// Numbers may be JSON strings or JSON numbers; both are decoded straight to
// exact decimals.
type jsonHolding struct {
	Value    *decimal.Decimal `json:"value"`
	Quantity *decimal.Decimal `json:"quantity"`
	Kind     string           `json:"kind"`
}

// DecodeJSON reads holdings from a JSON array of {"value","quantity","kind"} objects
func DecodeJSON(r io.Reader) ([]domain.Holding, error) {
	var entries []jsonHolding
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode JSON holdings: %w", err)
	}

	holdings := make([]domain.Holding, 0, len(entries))
	for i, entry := range entries {
		if entry.Value == nil {
			return nil, fmt.Errorf("entry %d: missing value", i)
		}
		if entry.Quantity == nil {
			return nil, fmt.Errorf("entry %d: missing quantity", i)
		}

		kind, err := domain.ParseAssetKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		holding, err := domain.NewHolding(*entry.Value, *entry.Quantity, kind)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		holdings = append(holdings, holding)
	}

	return holdings, nil
}
