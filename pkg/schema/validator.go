// Package schema holds services that allow to validate JSON encoding of located node
// against JSON schema.
//
// Package contains two validators accepting JSON schema as string:
//
//	RawXGValidator has ability to validate against JSON schema written with draft v4 v6 or v7.
//	RawQIValidator has ability to validate against JSON schema written with draft 7 & 2019-09.
//
// By default, gojsonschema will try to detect the draft of a schema by using the $schema keyword
// and parse it in a strict draft-04, draft-06 or draft-07 mode. If $schema is missing, or the
// draft version is not explicitely set, a hybrid mode is used which merges together functionality
// of all drafts into one mode.
package schema

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/qri-io/jsonschema"
	jschema "github.com/xeipuuv/gojsonschema"
)

// Validator describes entity that can validate document against JSON schema passed as string.
type Validator interface {
	// Validate validates document against jsonSchema.
	Validate(document, jsonSchema string) error
}

// RawXGValidator is entity that has ability to validate data against JSON schema passed as string.
// xeipuuv/gojsonschema is used under the hood.
type RawXGValidator struct{}

// RawQIValidator is entity that has ability to validate data against JSON schema passed as string.
// qri-io/jsonschema is used under the hood.
type RawQIValidator struct{}

func NewRawXGValidator() RawXGValidator {
	return RawXGValidator{}
}

func NewRawQIValidator() RawQIValidator {
	return RawQIValidator{}
}

// Validate validates document against jsonSchema.
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (v RawXGValidator) Validate(document, jsonSchema string) error {
	result, err := jschema.Validate(jschema.NewStringLoader(jsonSchema), jschema.NewStringLoader(document))
	if err != nil {
		return err
	}

	if !result.Valid() {
		errSum := ""
		for _, err := range result.Errors() {
			errSum += err.String()
		}

		return errors.New(errSum)
	}

	return nil
}

// Validate validates document against jsonSchema.
// according to library documentation it covers https://json-schema.org drafts 7 & 2019-09
func (v RawQIValidator) Validate(document, jsonSchema string) error {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(jsonSchema), rs); err != nil {
		return err
	}

	errs, err := rs.ValidateBytes(context.Background(), []byte(document))
	if err != nil {
		return err
	}

	var errStr string
	if len(errs) > 0 {
		for _, e := range errs {
			errStr += e.Error() + " "
		}

		err = errors.New(errStr)
	}

	return err
}
