package schema

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// IntOrString holds a value that is serialized as either a JSON string or a
// JSON number. Fields declared with format "int-or-string" use this type.
type IntOrString struct {
	IsString bool
	IntVal   int32
	StrVal   string
}

// FromInt returns an IntOrString holding an integer value.
func FromInt(v int) IntOrString {
	return IntOrString{IntVal: int32(v)}
}

// FromString returns an IntOrString holding a string value.
func FromString(v string) IntOrString {
	return IntOrString{IsString: true, StrVal: v}
}

// String returns the string value, or the formatted integer.
func (s IntOrString) String() string {
	if s.IsString {
		return s.StrVal
	}
	return strconv.Itoa(int(s.IntVal))
}

// MarshalJSON implements json.Marshaler.
func (s IntOrString) MarshalJSON() ([]byte, error) {
	if s.IsString {
		return json.Marshal(s.StrVal)
	}
	return json.Marshal(s.IntVal)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *IntOrString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s.IsString = true
		return json.Unmarshal(data, &s.StrVal)
	}
	s.IsString = false
	if err := json.Unmarshal(data, &s.IntVal); err != nil {
		return fmt.Errorf("schema: int-or-string value %s is neither: %w", data, err)
	}
	return nil
}
