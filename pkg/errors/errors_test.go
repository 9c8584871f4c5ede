package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeNotFound, "offer not found")
	if err.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Error() != "NOT_FOUND: offer not found" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeDependency, cause, "load offers")

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be discoverable with errors.Is")
	}
	if As(err) == nil {
		t.Fatal("expected As to find typed error")
	}
}

func TestAsThroughChain(t *testing.T) {
	inner := New(CodeExpired, "window closed")
	outer := fmt.Errorf("applying code: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error through fmt wrapping")
	}
	if typed.Code() != CodeExpired {
		t.Fatalf("unexpected code %s", typed.Code())
	}
	if !IsCode(outer, CodeExpired) {
		t.Fatal("IsCode should match through the chain")
	}
}

func TestMetadataFor(t *testing.T) {
	if MetadataFor(CodeExpired).HTTPStatus != http.StatusGone {
		t.Fatal("expired offers should map to 410")
	}
	if !MetadataFor(CodeDependency).Retryable {
		t.Fatal("dependency failures must be retryable")
	}
	if MetadataFor(Code("BOGUS")).HTTPStatus != http.StatusInternalServerError {
		t.Fatal("unknown codes fall back to internal")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"name": "is required"})
	details, ok := err.Details().(map[string]string)
	if !ok || details["name"] != "is required" {
		t.Fatalf("unexpected details %v", err.Details())
	}
}

func TestDumpBuildsChain(t *testing.T) {
	err := Wrap(CodeStorage, errors.New("corrupt payload"), "hydrate cart")
	d := Dump(err)
	if d.Code != CodeStorage {
		t.Fatalf("unexpected dump code %s", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", d.Chain)
	}
}
