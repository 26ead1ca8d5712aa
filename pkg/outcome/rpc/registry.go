package rpc

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Kind names a registered error family. Replies carry the registered
// message; KindOf maps a reply back to its family.
type Kind string

const (
	KindInternal Kind = "internal"
	KindTimeout  Kind = "timeout"
	KindNotFound Kind = "not_found"
)

var (
	kindMu sync.RWMutex
	kinds  = map[Kind]string{
		KindInternal: "Internal error",
		KindTimeout:  "Request timed out",
		KindNotFound: "Not found",
	}
)

// RegisterKind binds k to message. The message is capitalized the way
// reply messages are written on the wire. Registering an existing kind
// replaces its message.
func RegisterKind(k Kind, message string) {
	kindMu.Lock()
	defer kindMu.Unlock()
	kinds[k] = outcome.Capitalize(message)
}

// KindMessage returns the wire message registered for k.
func KindMessage(k Kind) (string, bool) {
	kindMu.RLock()
	defer kindMu.RUnlock()
	msg, ok := kinds[k]
	return msg, ok
}

// NewKindError mints a well-formed error payload for a registered kind.
// reqUUID must parse as a UUID; detail may be any JSON-encodable value,
// nil included.
func NewKindError(k Kind, reqUUID string, detail any) (*ErrorObject, error) {
	msg, ok := KindMessage(k)
	if !ok {
		return nil, fmt.Errorf("rpc: unknown kind %q", k)
	}

	if _, err := uuid.Parse(reqUUID); err != nil {
		return nil, fmt.Errorf("rpc: bad req_uuid: %w", err)
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		return nil, fmt.Errorf("rpc: encode detail: %w", err)
	}

	return &ErrorObject{
		Message: msg,
		Data:    &ErrorData{ReqUUID: reqUUID, Detail: raw},
	}, nil
}

// KindOf resolves an error payload back to its registered kind by message.
// Matching is capitalization-insensitive on the first rune.
func KindOf(obj *ErrorObject) (Kind, bool) {
	if obj == nil {
		return "", false
	}

	msg := outcome.Capitalize(obj.Message)

	kindMu.RLock()
	defer kindMu.RUnlock()
	for k, m := range kinds {
		if m == msg {
			return k, true
		}
	}
	return "", false
}
