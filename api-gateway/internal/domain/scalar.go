package domain

import (
	"encoding/json"
	"strconv"
)

// Scalar is a backend value in a scalar position. It keeps whatever JSON type
// the backend sent (string, number, bool or null) and leaves coercion to the
// GraphQL field it is resolved through. An absent field is null.
type Scalar struct {
	v interface{}
}

// NewScalar wraps v. Go integers are stored as float64, the type a decoded
// JSON number has.
func NewScalar(v interface{}) Scalar {
	switch n := v.(type) {
	case int:
		return Scalar{v: float64(n)}
	case int64:
		return Scalar{v: float64(n)}
	case float32:
		return Scalar{v: float64(n)}
	}
	return Scalar{v: v}
}

func (s Scalar) Value() interface{} {
	return s.v
}

func (s Scalar) IsNull() bool {
	return s.v == nil
}

// String renders the value as text: numbers without a trailing ".0", null as "".
func (s Scalar) String() string {
	switch v := s.v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	raw, _ := json.Marshal(s.v)
	return string(raw)
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.v)
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}
