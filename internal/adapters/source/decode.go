package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/okian/tierboard/internal/domain/model"
)

// Required record keys.
const (
	keyID         = "id"
	keyName       = "playerName"
	keyPoints     = "points"
	keyLastActive = "lastActive"
)

// lastActiveLayouts are tried in order for string timestamps.
var lastActiveLayouts = []string{ //nolint:gochecknoglobals // parse table
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type document struct {
	Players   []map[string]any `json:"players"`
	Title     string           `json:"title"`
	Subtitle  string           `json:"subtitle"`
	CustomCSS string           `json:"customCss"`
	Columns   json.RawMessage  `json:"columns"`
}

// Decode parses either a bare array of records (the bundled shape) or a
// configuration document with a players array and presentation hints.
func Decode(data []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Payload{}, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	var (
		raw  []map[string]any
		hint model.Presentation
	)
	switch trimmed[0] {
	case '[':
		if err := unmarshalNumbers(trimmed, &raw); err != nil {
			return Payload{}, err
		}
	case '{':
		var doc document
		if err := unmarshalNumbers(trimmed, &doc); err != nil {
			return Payload{}, err
		}
		if doc.Players == nil {
			return Payload{}, fmt.Errorf("%w: missing players array", ErrMalformed)
		}
		raw = doc.Players
		hint = model.Presentation{
			Title:     doc.Title,
			Subtitle:  doc.Subtitle,
			CustomCSS: doc.CustomCSS,
			Columns:   decodeColumns(doc.Columns),
		}
	default:
		return Payload{}, fmt.Errorf("%w: expected array or object", ErrMalformed)
	}

	records := make([]Record, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, fields := range raw {
		rec, err := decodeRecord(fields)
		if err != nil {
			return Payload{}, fmt.Errorf("%w: record %d: %w", ErrMalformed, i, err)
		}
		if _, dup := seen[rec.ID]; dup {
			return Payload{}, fmt.Errorf("%w: record %d: duplicate id %q", ErrMalformed, i, rec.ID)
		}
		seen[rec.ID] = struct{}{}
		records = append(records, rec)
	}
	return Payload{Records: records, Presentation: hint}, nil
}

func unmarshalNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	return nil
}

// decodeColumns keeps the column hints it understands. Hints are advisory,
// so an unusable entry is dropped rather than failing the document.
func decodeColumns(data json.RawMessage) []model.Column {
	var items []json.RawMessage
	if len(data) == 0 || json.Unmarshal(data, &items) != nil {
		return nil
	}
	cols := make([]model.Column, 0, len(items))
	for _, item := range items {
		var c model.Column
		if err := json.Unmarshal(item, &c); err != nil || strings.TrimSpace(c.Key) == "" {
			continue
		}
		cols = append(cols, c)
	}
	if len(cols) == 0 {
		return nil
	}
	return cols
}

func decodeRecord(fields map[string]any) (Record, error) {
	if fields == nil {
		return Record{}, errors.New("record is null")
	}
	var (
		rec Record
		err error
	)
	if rec.ID, err = decodeID(fields[keyID]); err != nil {
		return Record{}, err
	}
	name, ok := fields[keyName].(string)
	if !ok {
		return Record{}, fmt.Errorf("%s must be a string", keyName)
	}
	rec.Name = name
	if rec.Points, err = decodePoints(fields[keyPoints]); err != nil {
		return Record{}, err
	}
	if rec.LastActive, err = decodeTime(fields[keyLastActive]); err != nil {
		return Record{}, err
	}

	for key, v := range fields {
		switch key {
		case keyID, keyName, keyPoints, keyLastActive:
			continue
		}
		val, err := model.ValueOf(v)
		if err != nil {
			// Objects, arrays and null have no scalar rendering.
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]model.Value)
		}
		rec.Extra[key] = val
	}
	return rec, nil
}

func decodeID(v any) (string, error) {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return "", fmt.Errorf("%s must not be empty", keyID)
		}
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		return "", fmt.Errorf("%s must be a string or number", keyID)
	}
}

// decodePoints accepts integral numbers only. Sign is checked by the classifier.
func decodePoints(v any) (int64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", keyPoints)
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%s must be an integer, got %s", keyPoints, n)
	}
	return int64(f), nil
}

// decodeTime accepts the string layouts above or epoch milliseconds.
func decodeTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case string:
		for _, layout := range lastActiveLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("%s: unrecognised timestamp %q", keyLastActive, t)
	case json.Number:
		ms, err := strconv.ParseInt(t.String(), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s: epoch millis must be an integer", keyLastActive)
		}
		return time.UnixMilli(ms).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%s must be a string or number", keyLastActive)
	}
}
