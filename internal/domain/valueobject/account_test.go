package valueobject

import (
	"errors"
	"strings"
	"testing"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
)

func validationCode(t *testing.T, err error) string {
	t.Helper()
	var ve *domainerrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return ve.Code
}

func TestNewAccountName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantCode string
	}{
		{"valid", "Main Checking", "Main Checking", ""},
		{"trims whitespace", "  Savings  ", "Savings", ""},
		{"allows dash and underscore", "my-account_2", "my-account_2", ""},
		{"too short", "a", "", "account_name_too_short"},
		{"whitespace only", "   ", "", "account_name_too_short"},
		{"too long", strings.Repeat("a", 51), "", "account_name_too_long"},
		{"invalid characters", "cuenta@banco", "", "account_name_invalid_characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewAccountName(tt.input)
			if tt.wantCode != "" {
				if got := validationCode(t, err); got != tt.wantCode {
					t.Fatalf("code = %q, want %q", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tt.want {
				t.Fatalf("value = %q, want %q", n.String(), tt.want)
			}
		})
	}
}

func TestNewAccountBalance(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		want     float64
		wantCode string
	}{
		{"zero", 0, 0, ""},
		{"negative allowed", -120.5, -120.5, ""},
		{"rounds up", 10.006, 10.01, ""},
		{"rounds down", 10.004, 10, ""},
		{"max boundary", AccountBalanceMax, AccountBalanceMax, ""},
		{"min boundary", AccountBalanceMin, AccountBalanceMin, ""},
		{"above max", 1_000_000_000, 0, "account_balance_too_high"},
		{"below min", -1_000_000_000, 0, "account_balance_too_low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewAccountBalance(tt.input)
			if tt.wantCode != "" {
				if got := validationCode(t, err); got != tt.wantCode {
					t.Fatalf("code = %q, want %q", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Value() != tt.want {
				t.Fatalf("value = %v, want %v", b.Value(), tt.want)
			}
		})
	}
}

func TestAccountBalanceArithmetic(t *testing.T) {
	b, err := NewAccountBalance(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	added, err := b.Add(25.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added.Value() != 125.5 {
		t.Fatalf("Add = %v, want 125.5", added.Value())
	}

	sub, err := b.Subtract(250)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Value() != -150 {
		t.Fatalf("Subtract = %v, want -150", sub.Value())
	}

	if _, err := b.Add(AccountBalanceMax); err == nil {
		t.Fatal("expected error when sum exceeds the maximum")
	}
}

func TestNewCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantCode string
	}{
		{"eur", "EUR", "EUR", ""},
		{"lowercase normalized", "usd", "USD", ""},
		{"trims whitespace", " gbp ", "GBP", ""},
		{"unsupported", "SEK", "", "currency_not_supported"},
		{"not a code", "euros", "", "currency_invalid"},
		{"empty", "", "", "currency_invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCurrency(tt.input)
			if tt.wantCode != "" {
				if got := validationCode(t, err); got != tt.wantCode {
					t.Fatalf("code = %q, want %q", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Code() != tt.want {
				t.Fatalf("code = %q, want %q", c.Code(), tt.want)
			}
		})
	}
}
