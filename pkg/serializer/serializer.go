// Package serializer holds deserialization collaborators used when coercing
// located node into types outside the scalar fast path.
package serializer

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v2"
)

// Deserializer describes ability to deserialize raw data onto v.
type Deserializer interface {
	// Deserialize deserializes data on v.
	Deserialize(data []byte, v any) error
}

// JSON is entity that has ability to work with JSON format.
type JSON struct{}

// YAML is entity that has ability to work with YAML format.
type YAML struct{}

func NewJSONFormatter() JSON {
	return JSON{}
}

func NewYAMLFormatter() YAML {
	return YAML{}
}

// Deserialize deserializes data in JSON format on v.
func (serializer JSON) Deserialize(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Serialize serializes v into JSON format.
func (serializer JSON) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Deserialize deserializes data in YAML format on v.
// Because YAML is superset of JSON, raw JSON encoding of a node deserializes fine.
func (serializer YAML) Deserialize(data []byte, v any) error {
	if data == nil {
		return errors.New("data should not be nil")
	}

	if len(data) == 0 {
		return errors.New("data should not be empty []byte()")
	}

	return yaml.UnmarshalStrict(data, v)
}

// Serialize serializes v into YAML format.
func (serializer YAML) Serialize(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
