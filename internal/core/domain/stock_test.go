package domain

import (
	"errors"
	"testing"
)

func TestDebitStock(t *testing.T) {
	got, err := DebitStock(10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestDebitStock_ExactlyAvailable(t *testing.T) {
	got, err := DebitStock(5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestDebitStock_Insufficient(t *testing.T) {
	got, err := DebitStock(4, 5)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got != 4 {
		t.Errorf("current quantity must be unchanged, got %d", got)
	}
}

func TestCreditStock_NoUpperBound(t *testing.T) {
	got, err := CreditStock(10, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1010 {
		t.Errorf("expected 1010, got %d", got)
	}
}

func TestAdjustStock(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		want    int
		wantErr error
	}{
		{"debit", 10, -3, 7, nil},
		{"credit", 10, 3, 13, nil},
		{"noop", 10, 0, 10, nil},
		{"debit to zero", 5, -5, 0, nil},
		{"debit past zero", 2, -3, 2, ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdjustStock(tt.current, tt.delta)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
