package sequence

import (
	"context"
	"testing"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{10, 11, 12, 13, 14}) {
		t.Errorf("got %v, want [10 11 12 13 14]", got)
	}
}

func TestGenerate_SingleElement(t *testing.T) {
	s, err := Generate(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{0}) {
		t.Errorf("got %v, want [0]", got)
	}
}

func TestGenerate_NegativeStart(t *testing.T) {
	s, err := Generate(3, -2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{-2, -1, 0}) {
		t.Errorf("got %v, want [-2 -1 0]", got)
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	_, err := Generate(0, 5)
	if !seqerrors.IsInvalidArgument(err) {
		t.Errorf("expected invalid-argument, got %v", err)
	}
}

func TestGenerate_NegativeCount(t *testing.T) {
	_, err := Generate(-3, 5)
	if !seqerrors.IsInvalidArgument(err) {
		t.Errorf("expected invalid-argument, got %v", err)
	}
}

func TestGenerate_Restartable(t *testing.T) {
	s, err := Generate(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	first, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(first, second) {
		t.Errorf("restarted generator differs: %v vs %v", first, second)
	}
	if !intSliceEqual(first, []int{1, 2, 3, 4}) {
		t.Errorf("got %v, want [1 2 3 4]", first)
	}
}

func TestGenerate_Composable(t *testing.T) {
	gen, err := Generate(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	evens, err := Filter(gen, func(n int) bool { return n%2 == 0 })
	if err != nil {
		t.Fatal(err)
	}
	got, err := Collect(context.Background(), evens)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{0, 2, 4, 6, 8}) {
		t.Errorf("got %v, want [0 2 4 6 8]", got)
	}
}
