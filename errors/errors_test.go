package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNilArgument(t *testing.T) {
	err := NilArgument("source")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Details["param"] != "source" {
		t.Errorf("expected param=source, got %v", err.Details["param"])
	}
	if !strings.Contains(err.Error(), "source") {
		t.Errorf("message should name the parameter, got %q", err.Error())
	}
}

func TestNonPositiveCount(t *testing.T) {
	err := NonPositiveCount(-3)
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Details["count"] != -3 {
		t.Errorf("expected count=-3, got %v", err.Details["count"])
	}
}

func TestNoNaturalOrder(t *testing.T) {
	err := NoNaturalOrder("struct {}")
	if err.Code != ErrCodeInvalidConfiguration {
		t.Errorf("expected INVALID_CONFIGURATION, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "explicit comparer") {
		t.Errorf("message must direct the caller to supply a comparer, got %q", err.Message)
	}
}

func TestCastFailed(t *testing.T) {
	err := CastFailed(2, "string", "int")
	if err.Code != ErrCodeInvalidCast {
		t.Errorf("expected INVALID_CAST, got %s", err.Code)
	}
	if err.Details["index"] != 2 {
		t.Errorf("expected index=2, got %v", err.Details["index"])
	}
	if err.Details["from"] != "string" || err.Details["to"] != "int" {
		t.Errorf("expected from/to detail, got %v", err.Details)
	}
}

func TestError_WithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := New(ErrCodeInvalidArgument, "bad input").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestError_WithDetail(t *testing.T) {
	err := New(ErrCodeInvalidCast, "bad cast").WithDetail("index", 7)
	if err.Details["index"] != 7 {
		t.Errorf("expected index=7, got %v", err.Details["index"])
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("collect: %w", NilArgument("predicate"))
	if CodeOf(err) != ErrCodeInvalidArgument {
		t.Errorf("expected code through wrapping, got %s", CodeOf(err))
	}
	if !IsInvalidArgument(err) {
		t.Error("IsInvalidArgument should see through wrapping")
	}
}

func TestCodeOf_Foreign(t *testing.T) {
	if CodeOf(fmt.Errorf("plain")) != "" {
		t.Error("expected empty code for non-seqkit error")
	}
	if IsInvalidCast(nil) {
		t.Error("nil is not an invalid-cast error")
	}
}

func TestClassifiers(t *testing.T) {
	if !IsInvalidConfiguration(NoNaturalOrder("chan int")) {
		t.Error("NoNaturalOrder should classify as invalid-configuration")
	}
	if !IsInvalidCast(CastFailed(0, "bool", "string")) {
		t.Error("CastFailed should classify as invalid-cast")
	}
	if IsInvalidArgument(NoNaturalOrder("chan int")) {
		t.Error("codes must not overlap")
	}
}

func TestAsError(t *testing.T) {
	e, ok := AsError(fmt.Errorf("wrap: %w", CastFailed(1, "int", "string")))
	if !ok {
		t.Fatal("expected AsError to succeed")
	}
	if e.Code != ErrCodeInvalidCast {
		t.Errorf("expected INVALID_CAST, got %s", e.Code)
	}
	if _, ok := AsError(stderrors.New("other")); ok {
		t.Error("expected AsError to fail for foreign error")
	}
}
