package pdfimport

import "testing"

func TestValidateISIN(t *testing.T) {
	testCases := []struct {
		isin    string
		wantErr bool
	}{
		{"US0378331005", false},
		{"DE000A0H0785", false},
		{"LU0171310443", false},
		{"IE00B4L5Y983", false},
		{"US0378331006", true}, // check digit
		{"US037833100", true},  // length
		{"us0378331005", true}, // lower case
		{"1S0378331005", true},
	}
	for _, tc := range testCases {
		t.Run(tc.isin, func(t *testing.T) {
			if err := ValidateISIN(tc.isin); (err != nil) != tc.wantErr {
				t.Errorf("ValidateISIN(%q) error = %v, wantErr %v", tc.isin, err, tc.wantErr)
			}
		})
	}
}

func TestSecurityQuery_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		q       SecurityQuery
		wantErr bool
	}{
		{"name only", SecurityQuery{Name: "Apple Inc."}, false},
		{"isin and wkn", SecurityQuery{ISIN: "DE0005140008", WKN: "514000"}, false},
		{"empty", SecurityQuery{Currency: "EUR"}, true},
		{"bad isin", SecurityQuery{ISIN: "DE0005140009"}, true},
		{"bad wkn", SecurityQuery{Name: "x", WKN: "51400"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.q.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
