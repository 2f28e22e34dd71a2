package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FloatSeries is a time series of numeric samples stored in a JSON column.
type FloatSeries []float64

func (s FloatSeries) Value() (driver.Value, error) {
	if s == nil {
		s = FloatSeries{}
	}
	return json.Marshal(s)
}

func (s *FloatSeries) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into FloatSeries", src)
	}
}

// Max reports the largest sample. ok is false when the series is empty.
func (s FloatSeries) Max() (max float64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	max = s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

// Mean reports the arithmetic mean of the samples. ok is false when the
// series is empty.
func (s FloatSeries) Mean() (mean float64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s)), true
}

// JSONMap is a structured snapshot stored in a JSON column, e.g. {"avg": 61}.
type JSONMap map[string]float64

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", src)
	}
}
