package outcome

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsNil_NilShapes(t *testing.T) {
	t.Parallel()

	var p *int
	var s []int
	var m map[string]int
	var c chan int
	var f func()

	for i, v := range []interface{}{nil, p, s, m, c, f} {
		if !IsNil(v) {
			t.Fatalf("case %d: expected nil, got non-nil for %T", i, v)
		}
	}
}

func TestIsNil_PresentValues(t *testing.T) {
	t.Parallel()

	n := 1
	for i, v := range []interface{}{0, "", false, &n, []int{}, map[string]int{}} {
		if IsNil(v) {
			t.Fatalf("case %d: expected non-nil for %T(%v)", i, v, v)
		}
	}
}

func TestGetErrors_NilGivesEmpty(t *testing.T) {
	t.Parallel()

	if errs := GetErrors(nil); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestGetErrors_UnwrapsJoined(t *testing.T) {
	t.Parallel()

	e1 := errors.New("one")
	e2 := errors.New("two")
	errs := GetErrors(errors.Join(e1, e2))

	if len(errs) != 2 || errs[0] != e1 || errs[1] != e2 {
		t.Fatalf("expected [one two], got %v", errs)
	}
}

func TestGetErrors_SingleError(t *testing.T) {
	t.Parallel()

	e := errors.New("solo")
	errs := GetErrors(e)
	if len(errs) != 1 || errs[0] != e {
		t.Fatalf("expected [solo], got %v", errs)
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	if !IsCancellationError(context.Canceled) {
		t.Fatalf("expected context.Canceled to count as cancellation")
	}
	if !IsCancellationError(fmt.Errorf("wait: %w", context.DeadlineExceeded)) {
		t.Fatalf("expected wrapped deadline to count as cancellation")
	}
	if IsCancellationError(errors.New("boom")) {
		t.Fatalf("expected plain error to not count as cancellation")
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"h", "H"},
		{"über", "Über"},
		{"1abc", "1abc"},
		{"not found", "Not found"},
	}

	for _, c := range cases {
		if got := Capitalize(c.in); got != c.want {
			t.Fatalf("Capitalize(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
