package learner

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tictactoe/game"
)

// DataFormatError reports a snapshot that does not describe a full value table.
type DataFormatError struct {
	Line   int // 0 when the problem is not tied to a line
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed value table at line %d: %s", e.Line, e.Reason)
	}
	return "malformed value table: " + e.Reason
}

// WriteValues writes one value per line in index order, with no header.
func WriteValues(w io.Writer, v *ValueTable) error {
	writer := csv.NewWriter(w)
	for i, value := range v.values {
		err := writer.Write([]string{strconv.FormatFloat(value, 'e', 18, 64)})
		if err != nil {
			return fmt.Errorf("failed to write value %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush values: %w", err)
	}
	return nil
}

// ReadValues parses a snapshot written by WriteValues. Anything other than
// exactly one number in [0, 1] per record and 3^9 records yields a
// *DataFormatError.
func ReadValues(r io.Reader) (*ValueTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 1
	reader.ReuseRecord = true

	values := make([]float64, 0, game.NumStates)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &DataFormatError{Line: parseErr.Line, Reason: parseErr.Err.Error()}
			}
			return nil, fmt.Errorf("failed to read values: %w", err)
		}
		if len(values) == game.NumStates {
			line, _ := reader.FieldPos(0)
			return nil, &DataFormatError{Line: line, Reason: fmt.Sprintf("more than %d records", game.NumStates)}
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, &DataFormatError{Line: line, Reason: fmt.Sprintf("%q is not a number", record[0])}
		}
		if math.IsNaN(value) || value < 0 || value > 1 {
			line, _ := reader.FieldPos(0)
			return nil, &DataFormatError{Line: line, Reason: fmt.Sprintf("%v is outside [0, 1]", value)}
		}
		values = append(values, value)
	}
	if len(values) != game.NumStates {
		return nil, &DataFormatError{Reason: fmt.Sprintf("expected %d records, got %d", game.NumStates, len(values))}
	}
	return &ValueTable{values: values}, nil
}

// SaveValues writes the table to path, creating parent directories as needed.
func SaveValues(path string, v *ValueTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create value table file: %w", err)
	}
	defer f.Close()

	if err := WriteValues(f, v); err != nil {
		return err
	}
	return f.Close()
}

// LoadValues reads a table saved by SaveValues.
func LoadValues(path string) (*ValueTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open value table file: %w", err)
	}
	defer f.Close()

	v, err := ReadValues(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return v, nil
}
