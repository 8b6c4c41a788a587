package sequence

import (
	"context"
	"errors"
	"testing"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestForAll_AllMatch(t *testing.T) {
	ok, err := ForAll(context.Background(), FromSlice([]int{2, 4, 6}), func(n int) bool {
		return n%2 == 0
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected true when every element matches")
	}
}

func TestForAll_OneFails(t *testing.T) {
	ok, err := ForAll(context.Background(), FromSlice([]int{2, 3, 4}), func(n int) bool {
		return n%2 == 0
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected false when an element fails the predicate")
	}
}

func TestForAll_Empty(t *testing.T) {
	ok, err := ForAll(context.Background(), FromSlice([]int{}), func(int) bool {
		return false
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected vacuous truth for an empty sequence")
	}
}

func TestForAll_ShortCircuits(t *testing.T) {
	var calls int
	ok, err := ForAll(context.Background(), FromSlice([]int{1, 2, 3, 4}), func(n int) bool {
		calls++
		return n != 2
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected false")
	}
	if calls != 2 {
		t.Errorf("expected traversal to stop at the first failure, got %d calls", calls)
	}
}

func TestForAll_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ForAll(context.Background(), failingSequence([]int{1}, boom), func(int) bool {
		return true
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestForAll_NilArguments(t *testing.T) {
	if _, err := ForAll[int](context.Background(), nil, func(int) bool { return true }); !seqerrors.IsInvalidArgument(err) {
		t.Errorf("nil source: expected invalid-argument, got %v", err)
	}
	if _, err := ForAll(context.Background(), FromSlice([]int{1}), nil); !seqerrors.IsInvalidArgument(err) {
		t.Errorf("nil predicate: expected invalid-argument, got %v", err)
	}
}

func TestExists(t *testing.T) {
	ok, err := Exists(context.Background(), FromSlice([]int{1, 3, 4}), func(n int) bool {
		return n%2 == 0
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected true when some element matches")
	}
}

func TestExists_Empty(t *testing.T) {
	ok, err := Exists(context.Background(), FromSlice([]int{}), func(int) bool {
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected false for an empty sequence")
	}
}

func TestExists_ShortCircuits(t *testing.T) {
	var calls int
	ok, err := Exists(context.Background(), FromSlice([]int{1, 2, 3, 4}), func(n int) bool {
		calls++
		return n == 2
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected true")
	}
	if calls != 2 {
		t.Errorf("expected traversal to stop at the first match, got %d calls", calls)
	}
}
