package models

import (
	"encoding/json"

	"github.com/rizome-dev/openaigo/pkg/errors"
)

// ResponseKind tells which alternative of a Response was decoded
type ResponseKind int

const (
	// ResponseUnrecognized is a body that matched neither the payload nor the error shape
	ResponseUnrecognized ResponseKind = iota
	ResponseSuccess
	ResponseError
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseSuccess:
		return "success"
	case ResponseError:
		return "error"
	default:
		return "unrecognized"
	}
}

// Shaped is implemented by payloads that declare the JSON keys a body must
// carry to be recognised as that payload
type Shaped interface {
	RequiredFields() []string
}

// Response is a decoded API response body. Responses are not self-describing,
// so decoding tries the payload shape, then the error envelope, then keeps
// the raw value. Exactly one of Success, Error or Raw is meaningful,
// according to Kind.
type Response[T any] struct {
	Kind    ResponseKind
	Success *T
	Error   *errors.ErrorResponse
	Raw     any

	// StatusCode is the HTTP status the body arrived with
	StatusCode int `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Response[T]) UnmarshalJSON(data []byte) error {
	r.Kind, r.Success, r.Error, r.Raw = ResponseUnrecognized, nil, nil, nil

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		fields = nil
	}

	if payload, ok := decodeSuccess[T](data, fields); ok {
		r.Kind = ResponseSuccess
		r.Success = payload
		return nil
	}

	if envelope, ok := decodeErrorEnvelope(fields); ok {
		r.Kind = ResponseError
		r.Error = envelope
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Kind = ResponseUnrecognized
	r.Raw = raw
	return nil
}

func decodeSuccess[T any](data []byte, fields map[string]json.RawMessage) (*T, bool) {
	var payload T

	if shaped, ok := any(payload).(Shaped); ok {
		if fields == nil {
			return nil, false
		}
		for _, key := range shaped.RequiredFields() {
			if !present(fields, key) {
				return nil, false
			}
		}
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	return &payload, true
}

func decodeErrorEnvelope(fields map[string]json.RawMessage) (*errors.ErrorResponse, bool) {
	if !present(fields, "error") {
		return nil, false
	}

	var details map[string]json.RawMessage
	if err := json.Unmarshal(fields["error"], &details); err != nil || !present(details, "message") {
		return nil, false
	}

	var envelope errors.ErrorResponse
	if err := json.Unmarshal(fields["error"], &envelope.Error); err != nil {
		return nil, false
	}
	return &envelope, true
}

// present reports whether key exists and is not JSON null
func present(fields map[string]json.RawMessage, key string) bool {
	v, ok := fields[key]
	return ok && string(v) != "null"
}
