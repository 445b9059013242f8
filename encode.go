package stockmanager

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeTrades reads trades from r, either as a JSON array or as JSONL (one
// trade per line). Every decoded trade is validated.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	trades, err := decodeRecords[Trade](r)
	if err != nil {
		return nil, err
	}
	for i, t := range trades {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("trade #%d (%s): %w", i+1, t.StockCode, err)
		}
	}
	return trades, nil
}

// DecodePositions reads positions from r, either as a JSON array or as JSONL.
func DecodePositions(r io.Reader) ([]Position, error) {
	return decodeRecords[Position](r)
}

// EncodeTrades writes trades to w as JSONL, one trade per line.
func EncodeTrades(w io.Writer, trades []Trade) error {
	return encodeRecords(w, trades)
}

// EncodePositions writes positions to w as JSONL, one position per line.
func EncodePositions(w io.Writer, positions []Position) error {
	return encodeRecords(w, positions)
}

func decodeRecords[T any](r io.Reader) ([]T, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	if first == '[' {
		var records []T
		if err := json.NewDecoder(br).Decode(&records); err != nil {
			return nil, fmt.Errorf("could not decode JSON array: %w", err)
		}
		if records == nil {
			records = []T{}
		}
		return records, nil
	}

	records := []T{}
	scanner := bufio.NewScanner(br)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var record T
		if err := json.Unmarshal(lineBytes, &record); err != nil {
			return nil, fmt.Errorf("could not decode line %d %q: %w", line, string(lineBytes), err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read records: %w", err)
	}
	return records, nil
}

// peekNonSpace skips leading white space and returns the next byte without consuming it.
func peekNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			if _, err := r.ReadByte(); err != nil {
				return 0, err
			}
		default:
			return b[0], nil
		}
	}
}

func encodeRecords[T any](w io.Writer, records []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("could not encode record #%d: %w", i+1, err)
		}
	}
	return nil
}
