package tracker

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quantamisecode-hub/groona/pkg/domain/calendar"
)

// FlexibleDate is a calendar date decoded from any of the shapes legacy
// exports produce: date-only strings, full timestamps, epoch numbers, or
// null. An unparseable value decodes to the invalid zero date instead of
// failing the whole document.
type FlexibleDate struct {
	time  time.Time
	valid bool
}

// NewFlexibleDate wraps an already-parsed time as a valid date.
func NewFlexibleDate(t time.Time) FlexibleDate {
	return FlexibleDate{time: calendar.DayOf(t), valid: true}
}

// Time returns the day-granular time and whether the date is valid.
func (d FlexibleDate) Time() (time.Time, bool) {
	return d.time, d.valid
}

// Valid reports whether a usable date was decoded.
func (d FlexibleDate) Valid() bool {
	return d.valid
}

// String formats the date as YYYY-MM-DD, or "" when invalid.
func (d FlexibleDate) String() string {
	if !d.valid {
		return ""
	}
	return d.time.Format("2006-01-02")
}

func (d *FlexibleDate) set(raw any) {
	switch v := raw.(type) {
	case string:
		d.time, d.valid = calendar.ParseDate(v)
	case float64:
		d.setEpoch(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			d.setEpoch(f)
		}
	}
}

// setEpoch interprets a numeric value as unix seconds, or milliseconds for
// magnitudes no plausible seconds value reaches.
func (d *FlexibleDate) setEpoch(v float64) {
	if v <= 0 {
		return
	}
	sec := int64(v)
	if v >= 1e11 {
		sec = int64(v / 1000)
	}
	d.time = calendar.DayOf(time.Unix(sec, 0))
	d.valid = true
}

func (d *FlexibleDate) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = FlexibleDate{}
	d.set(raw)
	return nil
}

func (d FlexibleDate) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *FlexibleDate) UnmarshalYAML(node *yaml.Node) error {
	*d = FlexibleDate{}
	switch node.Tag {
	case "!!null":
		return nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err == nil {
			*d = NewFlexibleDate(t)
		}
		return nil
	default:
		d.set(node.Value)
		if !d.valid {
			if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
				d.setEpoch(f)
			}
		}
		return nil
	}
}

func (d FlexibleDate) MarshalYAML() (any, error) {
	if !d.valid {
		return nil, nil
	}
	return d.String(), nil
}

// EntityID is an entity reference that may arrive as a scalar string, a
// number, or a nested object carrying "id" or "_id". It normalizes to a
// plain string so no downstream component repeats the coercion.
type EntityID string

// IsZero reports whether the reference is absent.
func (id EntityID) IsZero() bool {
	return id == ""
}

func (id EntityID) String() string {
	return string(id)
}

func (id *EntityID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*id = coerceID(raw)
	return nil
}

func (id *EntityID) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var m map[string]any
		if err := node.Decode(&m); err != nil {
			*id = ""
			return nil
		}
		*id = coerceID(m)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*id = ""
			return nil
		}
		*id = EntityID(node.Value)
	default:
		*id = ""
	}
	return nil
}

func coerceID(raw any) EntityID {
	switch v := raw.(type) {
	case string:
		return EntityID(v)
	case float64:
		return EntityID(strconv.FormatFloat(v, 'f', -1, 64))
	case json.Number:
		return EntityID(v.String())
	case map[string]any:
		for _, key := range []string{"id", "_id"} {
			if nested, ok := v[key]; ok {
				if id := coerceID(nested); !id.IsZero() {
					return id
				}
			}
		}
	}
	return ""
}

// StringList is a list of strings tolerant of a bare scalar, used for
// assignee fields that historically held a single email before becoming
// multi-assign.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = coerceStringList(raw)
	return nil
}

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			*l = nil
			return nil
		}
		*l = cleanStrings(items)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = cleanStrings([]string{node.Value})
	default:
		*l = nil
	}
	return nil
}

func coerceStringList(raw any) StringList {
	switch v := raw.(type) {
	case string:
		return cleanStrings([]string{v})
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return cleanStrings(items)
	}
	return nil
}

func cleanStrings(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Quantity is a non-negative numeric field (story points, hours) tolerant of
// legacy encodings: numbers, numeric strings, null, or garbage. Anything
// negative or non-numeric decodes to zero.
type Quantity float64

// Float64 returns the quantity as a plain float.
func (q Quantity) Float64() float64 {
	return float64(q)
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*q = coerceQuantity(raw)
	return nil
}

func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*q = 0
		return nil
	}
	*q = coerceQuantity(node.Value)
	return nil
}

func coerceQuantity(raw any) Quantity {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case json.Number:
		f, _ = v.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool, nil:
		return 0
	default:
		return 0
	}
	if f < 0 || f != f { // negative or NaN
		return 0
	}
	return Quantity(f)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%g", float64(q))), nil
}
