package pdfimport

import "testing"

func TestPercentageFee(t *testing.T) {
	testCases := []struct {
		name      string
		principal Money
		rebate    string
		surcharge string
		want      Money
	}{
		{"half rebated", M(10500, "EUR"), "50", "5", M(250, "EUR")},
		{"fully rebated", M(100000, "EUR"), "100", "5", M(0, "EUR")},
		{"no rebate", M(10500, "EUR"), "0", "5", M(500, "EUR")},
		// Kurswert 509,71 EUR, Kundenbonifikation 40 %, Ausgabeaufschlag 5,00 %
		{"statement", M(50971, "EUR"), "40", "5", M(1456, "EUR")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PercentageFee(tc.principal, dec(tc.rebate), dec(tc.surcharge))
			if !got.Equal(tc.want) {
				t.Errorf("PercentageFee(%v, %s, %s) = %v, want %v", tc.principal, tc.rebate, tc.surcharge, got, tc.want)
			}
		})
	}
}
