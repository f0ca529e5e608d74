package model

import (
	"encoding/json"
	"fmt"
)

// Column is a layout hint for one extra column. Renderers interpret it.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align string `json:"align,omitempty"`
}

// UnmarshalJSON accepts the object form or a bare field key, which is also
// used as the label.
func (c *Column) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*c = Column{Key: key, Label: key}
		return nil
	}
	type plain Column
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: column: %w", ErrUnsupportedValue, err)
	}
	*c = Column(p)
	return nil
}

// Presentation carries the optional display hints of an external document.
type Presentation struct {
	Title     string   `json:"title,omitempty"`
	Subtitle  string   `json:"subtitle,omitempty"`
	CustomCSS string   `json:"customCss,omitempty"`
	Columns   []Column `json:"columns,omitempty"`
}

// IsZero reports whether no hint was supplied.
func (p Presentation) IsZero() bool {
	return p.Title == "" && p.Subtitle == "" && p.CustomCSS == "" && len(p.Columns) == 0
}
