package rpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Version is the only protocol version a reply may carry. An absent
// jsonrpc member is accepted too.
const Version = "2.0"

// Shape is the outcome of classifying a reply against the known envelope
// templates.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeSuccess
	ShapeError
)

func (s Shape) String() string {
	switch s {
	case ShapeSuccess:
		return "success"
	case ShapeError:
		return "error"
	default:
		return "unknown"
	}
}

// Envelope is a decoded JSON-RPC reply. Raw members keep absent and
// present-but-null apart, which the recognizers depend on.
type Envelope struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  *Payload        `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

type Payload struct {
	Data json.RawMessage `json:"data"`
}

// ErrorObject is the error member of a reply. It is an ordinary Go error,
// so failed replies travel through error returns unchanged.
type ErrorObject struct {
	Message string     `json:"message"`
	Data    *ErrorData `json:"data"`
}

type ErrorData struct {
	ReqUUID string          `json:"req_uuid"`
	Detail  json.RawMessage `json:"detail"`
}

func (e *ErrorObject) Error() string {
	if e.Data != nil && e.Data.ReqUUID != "" {
		return fmt.Sprintf("%s (req %s)", e.Message, e.Data.ReqUUID)
	}
	return e.Message
}

// UUID parses the request identifier carried by the error payload.
func (d *ErrorData) UUID() (uuid.UUID, error) {
	return uuid.Parse(d.ReqUUID)
}

// IsSuccess reports whether e is a well-formed success reply: a valid
// header, a result member whose data key is present, and no error member.
func IsSuccess(e *Envelope) bool {
	if e == nil || !validHeader(e) {
		return false
	}
	return e.Error == nil && e.Result != nil && len(e.Result.Data) > 0
}

// IsError reports whether e is a well-formed error reply: a valid header,
// no result member, and an error member carrying message, req_uuid and
// detail.
func IsError(e *Envelope) bool {
	if e == nil || !validHeader(e) {
		return false
	}
	return e.Result == nil && wellFormed(e.Error)
}

// Classify tests e against the reply templates, success first; the first
// match wins.
func Classify(e *Envelope) Shape {
	if IsSuccess(e) {
		return ShapeSuccess
	}
	if IsError(e) {
		return ShapeError
	}
	return ShapeUnknown
}

// ClassifyBytes decodes raw and classifies the decoded reply. Bytes that
// do not decode into an object give ShapeUnknown and a nil envelope.
func ClassifyBytes(raw []byte) (Shape, *Envelope) {
	var e Envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return ShapeUnknown, nil
	}
	return Classify(&e), &e
}

// AsErrorObject extracts the error payload from a value that surfaced as a
// failure: a bare *ErrorObject, an error-shaped envelope, or any error
// wrapping an *ErrorObject. Malformed payloads are not recognized.
func AsErrorObject(v any) (*ErrorObject, bool) {
	switch obj := v.(type) {
	case nil:
		return nil, false
	case *ErrorObject:
		if wellFormed(obj) {
			return obj, true
		}
		return nil, false
	case *Envelope:
		if IsError(obj) {
			return obj.Error, true
		}
		return nil, false
	case Envelope:
		if IsError(&obj) {
			return obj.Error, true
		}
		return nil, false
	case error:
		var target *ErrorObject
		if errors.As(obj, &target) && wellFormed(target) {
			return target, true
		}
		return nil, false
	}
	return nil, false
}

// NewSuccess builds a success reply wrapping data. id may be nil, a string
// or a number.
func NewSuccess(id any, data any) (*Envelope, error) {
	rawID, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("rpc: encode data: %w", err)
	}

	return &Envelope{
		JSONRPC: Version,
		ID:      rawID,
		Result:  &Payload{Data: rawData},
	}, nil
}

// NewError builds an error reply around obj, which must be well formed.
func NewError(id any, obj *ErrorObject) (*Envelope, error) {
	if !wellFormed(obj) {
		return nil, errors.New("rpc: malformed error object")
	}

	rawID, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		JSONRPC: Version,
		ID:      rawID,
		Error:   obj,
	}, nil
}

func validHeader(e *Envelope) bool {
	if e.JSONRPC != "" && e.JSONRPC != Version {
		return false
	}
	return validID(e.ID)
}

// validID accepts an absent id, a JSON string or a JSON number.
func validID(id json.RawMessage) bool {
	if len(id) == 0 {
		return true
	}
	c := id[0]
	return c == '"' || c == '-' || (c >= '0' && c <= '9')
}

// wellFormed checks the member rules of the error template: message set,
// req_uuid set, detail key present. An empty message counts as absent.
func wellFormed(obj *ErrorObject) bool {
	return obj != nil && obj.Message != "" && obj.Data != nil &&
		obj.Data.ReqUUID != "" && len(obj.Data.Detail) > 0
}

func encodeID(id any) (json.RawMessage, error) {
	if id == nil {
		return nil, nil
	}
	switch id.(type) {
	case string, int, int32, int64, uint, uint32, uint64, float32, float64:
		raw, err := json.Marshal(id)
		if err != nil {
			return nil, fmt.Errorf("rpc: encode id: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("rpc: id must be a string or a number, got %T", id)
	}
}
