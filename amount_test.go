package pdfimport

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input    string
		currency string
		want     int64
	}{
		{"1.930,17", "EUR", 193017},
		{"0,5", "EUR", 50},
		{"12", "EUR", 1200},
		{"2,345", "EUR", 235}, // half-up
		{"2,344", "EUR", 234},
		{"1.234.567,891", "EUR", 123456789},
		{" 42,10 ", "USD", 4210},
		{"1.234", "JPY", 1234},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input, tc.currency)
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	for _, input := range []string{"", "abc", "1,930.17", "1.93", "12.34,5", "1,", ",5", "1 000,00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input, "EUR")
			if !errors.Is(err, ErrMalformedAmount) {
				t.Errorf("ParseAmount(%q) error = %v, want ErrMalformedAmount", input, err)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		minor    int64
		currency string
		want     string
	}{
		{193017, "EUR", "1.930,17"},
		{5, "EUR", "0,05"},
		{100000000, "EUR", "1.000.000,00"},
		{-123456, "EUR", "-1.234,56"},
		{1234, "JPY", "1.234"},
		{0, "USD", "0,00"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatAmount(tc.minor, tc.currency); got != tc.want {
				t.Errorf("FormatAmount(%d, %s) = %q, want %q", tc.minor, tc.currency, got, tc.want)
			}
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 101, 999999, 1000000, 193017, 123456789012} {
		s := FormatAmount(minor, "EUR")
		got, err := ParseAmount(s, "EUR")
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", s, err)
		}
		if got != minor {
			t.Errorf("ParseAmount(FormatAmount(%d)) = %d (via %q)", minor, got, s)
		}
	}
}

func TestParseShares(t *testing.T) {
	got, err := ParseShares("7,1535")
	if err != nil {
		t.Fatalf("ParseShares unexpected error: %v", err)
	}
	if want := Q(71535).Decimal().Shift(-4); !got.Decimal().Equal(want) {
		t.Errorf("ParseShares(7,1535) = %v, want %v", got, want)
	}
}

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"EUR", "EUR", false},
		{"usd", "USD", false},
		{" CHF", "CHF", false},
		{"EURO", "", true},
		{"E1R", "", true},
		{"XYZ", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseCurrency(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCurrency(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr && !errors.Is(err, ErrMalformedCurrency) {
				t.Errorf("ParseCurrency(%q) error = %v, want ErrMalformedCurrency", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseCurrency(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("05.01.2021", "09:04")
	if err != nil {
		t.Fatalf("ParseDateTime unexpected error: %v", err)
	}
	if want := "2021-01-05T09:04:00"; got.String() != want {
		t.Errorf("ParseDateTime() = %q, want %q", got, want)
	}

	if _, err := ParseDateTime("31.02.2021", ""); !errors.Is(err, ErrMalformedDate) {
		t.Errorf("ParseDateTime(31.02.2021) error = %v, want ErrMalformedDate", err)
	}
}
