package rpc

import (
	"encoding/json"
	"testing"
)

const testUUID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func TestKindMessage_BuiltIns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind Kind
		want string
	}{
		{KindInternal, "Internal error"},
		{KindTimeout, "Request timed out"},
		{KindNotFound, "Not found"},
	}
	for _, c := range cases {
		msg, ok := KindMessage(c.kind)
		if !ok || msg != c.want {
			t.Fatalf("kind %q: expected %q, got: msg=%q, ok=%v", c.kind, c.want, msg, ok)
		}
	}

	if _, ok := KindMessage("never_registered"); ok {
		t.Fatalf("expected an unregistered kind to not resolve")
	}
}

func TestRegisterKind_CapitalizesMessage(t *testing.T) {
	t.Parallel()

	RegisterKind("rate_limited", "too many requests")

	msg, ok := KindMessage("rate_limited")
	if !ok || msg != "Too many requests" {
		t.Fatalf("expected the registered message capitalized, got: msg=%q, ok=%v", msg, ok)
	}
}

func TestRegisterKind_ReplacesMessage(t *testing.T) {
	t.Parallel()

	RegisterKind("flaky", "first wording")
	RegisterKind("flaky", "second wording")

	msg, _ := KindMessage("flaky")
	if msg != "Second wording" {
		t.Fatalf("expected the replacement message, got %q", msg)
	}
}

func TestNewKindError(t *testing.T) {
	t.Parallel()

	obj, err := NewKindError(KindNotFound, testUUID, map[string]string{"table": "users"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if obj.Message != "Not found" {
		t.Fatalf("expected the registered message, got %q", obj.Message)
	}
	if obj.Data.ReqUUID != testUUID {
		t.Fatalf("expected req_uuid carried, got %q", obj.Data.ReqUUID)
	}

	var detail map[string]string
	if err := json.Unmarshal(obj.Data.Detail, &detail); err != nil || detail["table"] != "users" {
		t.Fatalf("expected the detail encoded, got: %s, err=%v", obj.Data.Detail, err)
	}

	if _, ok := AsErrorObject(obj); !ok {
		t.Fatalf("expected a minted payload to be recognized")
	}
}

func TestNewKindError_NilDetail(t *testing.T) {
	t.Parallel()

	obj, err := NewKindError(KindInternal, testUUID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(obj.Data.Detail) != "null" {
		t.Fatalf("expected detail null, got %s", obj.Data.Detail)
	}
	if _, ok := AsErrorObject(obj); !ok {
		t.Fatalf("expected detail:null to stay well formed")
	}
}

func TestNewKindError_Rejections(t *testing.T) {
	t.Parallel()

	if _, err := NewKindError("never_registered", testUUID, nil); err == nil {
		t.Fatalf("expected an unregistered kind to be rejected")
	}
	if _, err := NewKindError(KindInternal, "not-a-uuid", nil); err == nil {
		t.Fatalf("expected a malformed req_uuid to be rejected")
	}
	if _, err := NewKindError(KindInternal, testUUID, func() {}); err == nil {
		t.Fatalf("expected an unencodable detail to be rejected")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	obj, err := NewKindError(KindTimeout, testUUID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kind, ok := KindOf(obj)
	if !ok || kind != KindTimeout {
		t.Fatalf("expected the timeout kind, got: kind=%q, ok=%v", kind, ok)
	}
}

func TestKindOf_NormalizesFirstRune(t *testing.T) {
	t.Parallel()

	obj := &ErrorObject{
		Message: "not found",
		Data:    &ErrorData{ReqUUID: testUUID, Detail: json.RawMessage(`{}`)},
	}

	kind, ok := KindOf(obj)
	if !ok || kind != KindNotFound {
		t.Fatalf("expected a lower-cased wire message to resolve, got: kind=%q, ok=%v", kind, ok)
	}
}

func TestKindOf_Unknown(t *testing.T) {
	t.Parallel()

	obj := &ErrorObject{Message: "Something else entirely"}
	if _, ok := KindOf(obj); ok {
		t.Fatalf("expected an unknown message to not resolve")
	}
	if _, ok := KindOf(nil); ok {
		t.Fatalf("expected nil to not resolve")
	}
}
