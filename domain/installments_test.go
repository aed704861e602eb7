package domain

import (
	"errors"
	"math"
	"testing"
)

func TestInstallmentList_AddKeepsOrderAndDuplicates(t *testing.T) {
	var l InstallmentList

	for _, v := range []float64{850, 300, 850} {
		if err := l.Add(v); err != nil {
			t.Fatalf("unexpected error adding %.2f: %v", v, err)
		}
	}

	want := []float64{850, 300, 850}
	if len(l) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(l))
	}
	for i := range want {
		if l[i] != want[i] {
			t.Errorf("entry %d: expected %.2f, got %.2f", i, want[i], l[i])
		}
	}
	if l.Total() != 2000 {
		t.Errorf("expected total 2000, got %.2f", l.Total())
	}
}

func TestInstallmentList_AddRejectsInvalid(t *testing.T) {
	var l InstallmentList

	for _, v := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		err := l.Add(v)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected validation error for %v, got %v", v, err)
		}
		var vErr *ValidationError
		if errors.As(err, &vErr) && vErr.Kind != KindInvalidInstallment {
			t.Errorf("expected kind %s, got %s", KindInvalidInstallment, vErr.Kind)
		}
	}
	if len(l) != 0 {
		t.Errorf("expected empty list, got %v", l)
	}
}

func TestInstallmentList_AddRejectsWhenFull(t *testing.T) {
	var l InstallmentList
	for i := 0; i < MaxInstallments; i++ {
		if err := l.Add(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	err := l.Add(1)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Kind != KindInstallmentsFull {
		t.Fatalf("expected %s, got %v", KindInstallmentsFull, err)
	}
}

func TestInstallmentList_RemoveAt(t *testing.T) {
	l := InstallmentList{850, 300, 120}

	if !l.RemoveAt(1) {
		t.Fatalf("expected removal at index 1")
	}
	if len(l) != 2 || l[0] != 850 || l[1] != 120 {
		t.Errorf("unexpected list after removal: %v", l)
	}
}

func TestInstallmentList_RemoveAtOutOfRange(t *testing.T) {
	l := InstallmentList{850, 300}

	for _, idx := range []int{-1, 2, 99} {
		if l.RemoveAt(idx) {
			t.Errorf("expected no removal at index %d", idx)
		}
	}
	if len(l) != 2 || l[0] != 850 || l[1] != 300 {
		t.Errorf("list should be unchanged, got %v", l)
	}
}

func TestInstallmentList_Clear(t *testing.T) {
	l := InstallmentList{850, 300}
	l.Clear()

	if len(l) != 0 {
		t.Errorf("expected empty list, got %v", l)
	}
}

func TestInstallmentList_DisplayList(t *testing.T) {
	l := InstallmentList{850, 1234.5}

	views := l.DisplayList()
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Index != 0 || views[0].Display != "R$ 850,00" {
		t.Errorf("unexpected first view: %+v", views[0])
	}
	if views[1].Index != 1 || views[1].Display != "R$ 1.234,50" {
		t.Errorf("unexpected second view: %+v", views[1])
	}
}
