package sequence

import (
	"testing"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestDefaultComparer_Int(t *testing.T) {
	cmpFn, err := DefaultComparer[int]()
	if err != nil {
		t.Fatal(err)
	}
	if cmpFn(1, 2) >= 0 || cmpFn(2, 1) <= 0 || cmpFn(3, 3) != 0 {
		t.Error("int comparer disagrees with numeric order")
	}
}

func TestDefaultComparer_Uint(t *testing.T) {
	cmpFn, err := DefaultComparer[uint8]()
	if err != nil {
		t.Fatal(err)
	}
	if cmpFn(0, 255) >= 0 {
		t.Error("uint comparer disagrees with numeric order")
	}
}

func TestDefaultComparer_Float(t *testing.T) {
	cmpFn, err := DefaultComparer[float64]()
	if err != nil {
		t.Fatal(err)
	}
	if cmpFn(1.5, 2.5) >= 0 || cmpFn(2.5, 2.5) != 0 {
		t.Error("float comparer disagrees with numeric order")
	}
}

func TestDefaultComparer_String(t *testing.T) {
	cmpFn, err := DefaultComparer[string]()
	if err != nil {
		t.Fatal(err)
	}
	if cmpFn("a", "b") >= 0 || cmpFn("b", "a") <= 0 || cmpFn("a", "a") != 0 {
		t.Error("string comparer disagrees with lexical order")
	}
}

func TestDefaultComparer_Bool(t *testing.T) {
	cmpFn, err := DefaultComparer[bool]()
	if err != nil {
		t.Fatal(err)
	}
	if cmpFn(false, true) >= 0 || cmpFn(true, false) <= 0 || cmpFn(true, true) != 0 {
		t.Error("bool comparer must order false before true")
	}
}

func TestDefaultComparer_NamedType(t *testing.T) {
	type priority int
	cmpFn, err := DefaultComparer[priority]()
	if err != nil {
		t.Fatal(err)
	}
	if cmpFn(priority(1), priority(2)) >= 0 {
		t.Error("named integer type must inherit numeric order")
	}
}

func TestDefaultComparer_Unordered(t *testing.T) {
	type pair struct{ a, b int }
	_, err := DefaultComparer[pair]()
	if !seqerrors.IsInvalidConfiguration(err) {
		t.Errorf("expected invalid-configuration, got %v", err)
	}
}
