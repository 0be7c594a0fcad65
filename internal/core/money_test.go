package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAmountToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "plain decimal", input: "12.34", want: 1234},
		{name: "decimal comma", input: "12,34", want: 1234},
		{name: "integer", input: "150", want: 15000},
		{name: "zero allowed", input: "0", want: 0},
		{name: "third decimal rounds down", input: "12.344", want: 1234},
		{name: "third decimal rounds up", input: "12.346", want: 1235},
		{name: "negative rejected", input: "-5.00", wantErr: ErrNegativeAmount},
		{name: "empty rejected", input: "", wantErr: ErrInvalidAmount},
		{name: "letters rejected", input: "12a.30", wantErr: ErrInvalidAmount},
		{name: "double separator rejected", input: "1.2.3", wantErr: ErrInvalidAmount},
		{name: "bare dot rejected", input: ".", wantErr: ErrInvalidAmount},
		{name: "bare comma rejected", input: ",", wantErr: ErrInvalidAmount},
		{name: "lone sign rejected", input: "+", wantErr: ErrInvalidAmount},
		{name: "leading dot parses", input: ".50", want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountToCents(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAmountToCents(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmountToCents(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmountToCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "json number", input: `1234.5`, want: 123450},
		{name: "quoted decimal", input: `"99.99"`, want: 9999},
		{name: "malformed string is an error", input: `"abc"`, wantErr: true},
		{name: "bare separator is an error", input: `"."`, wantErr: true},
		{name: "null is an error", input: `null`, wantErr: true},
		{name: "negative is an error", input: `-10`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := json.Unmarshal([]byte(tt.input), &m)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) = %d, want error", tt.input, m.Cents)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tt.input, err)
			}
			if m.Cents != tt.want {
				t.Errorf("Unmarshal(%s) = %d cents, want %d", tt.input, m.Cents, tt.want)
			}
		})
	}
}

func TestMoneyDecimal(t *testing.T) {
	if got := (Money{Cents: 1234}).Decimal(); got != "12.34" {
		t.Errorf("Decimal() = %q, want \"12.34\"", got)
	}
	if got := (Money{Cents: -50}).Decimal(); got != "-0.50" {
		t.Errorf("Decimal() = %q, want \"-0.50\"", got)
	}
	if got := (Money{Cents: 500}).Add(Money{Cents: 25}); got.Cents != 525 {
		t.Errorf("Add() = %d, want 525", got.Cents)
	}
}
