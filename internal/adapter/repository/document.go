package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"campus_security_backend/internal/core/port"
)

// Helpers shared by the stores that keep documents as JSON (memory, redis).
// A document's identity is its "id" field.

const idField = "id"

type jsonDoc struct {
	id     string
	raw    []byte
	fields map[string]any
}

func encodeDoc(doc any) (*jsonDoc, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return decodeDoc(raw)
}

func decodeDoc(raw []byte) (*jsonDoc, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	id, _ := fields[idField].(string)
	if id == "" {
		return nil, fmt.Errorf("document has no %q field", idField)
	}
	return &jsonDoc{id: id, raw: raw, fields: fields}, nil
}

// matches compares JSON encodings so that 1 and 1.0, or a typed enum and its
// string tag, are equal.
func (d *jsonDoc) matches(filter port.Filter) bool {
	for key, want := range filter {
		wantJSON, err := json.Marshal(want)
		if err != nil {
			return false
		}
		gotJSON, err := json.Marshal(d.fields[key])
		if err != nil {
			return false
		}
		if !bytes.Equal(wantJSON, gotJSON) {
			return false
		}
	}
	return true
}

// withChanges returns a copy of the document with the given fields overwritten.
func (d *jsonDoc) withChanges(set map[string]any) (*jsonDoc, error) {
	merged := make(map[string]any, len(d.fields)+len(set))
	for k, v := range d.fields {
		merged[k] = v
	}
	for k, v := range set {
		if k == idField {
			continue
		}
		merged[k] = v
	}
	return encodeDoc(merged)
}

func unmarshalDocs[T any](docs []*jsonDoc) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.raw, &v); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", d.id, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// selectDocs filters, orders and truncates docs as a store-side query would.
func selectDocs(docs []*jsonDoc, filter port.Filter, opts port.FindOptions) []*jsonDoc {
	selected := make([]*jsonDoc, 0, len(docs))
	for _, d := range docs {
		if d.matches(filter) {
			selected = append(selected, d)
		}
	}
	if opts.SortField != "" {
		sort.SliceStable(selected, func(i, j int) bool {
			c := compareValues(selected[i].fields[opts.SortField], selected[j].fields[opts.SortField])
			if opts.Descending {
				return c > 0
			}
			return c < 0
		})
	}
	if opts.Limit > 0 && int64(len(selected)) > opts.Limit {
		selected = selected[:opts.Limit]
	}
	return selected
}

// compareValues orders two decoded JSON values. Timestamps compare
// chronologically, everything else by its natural order.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 1
		}
		at, aerr := time.Parse(time.RFC3339Nano, av)
		bt, berr := time.Parse(time.RFC3339Nano, bv)
		if aerr == nil && berr == nil {
			return at.Compare(bt)
		}
		return strings.Compare(av, bv)
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 1
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case bool:
		bv, ok := b.(bool)
		if !ok || av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case nil:
		if b == nil {
			return 0
		}
		return -1
	}
	return 0
}
