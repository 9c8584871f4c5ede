package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
)

func TestParseQueryInt(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		want    int
		wantErr bool
	}{
		{"missing uses default", "/products", 0, false},
		{"blank uses default", "/products?limit=%20", 0, false},
		{"valid value", "/products?limit=25", 25, false},
		{"boundary min", "/products?limit=1", 1, false},
		{"boundary max", "/products?limit=100", 100, false},
		{"non-numeric", "/products?limit=ten", 0, true},
		{"below min", "/products?limit=0", 0, true},
		{"above max", "/products?limit=101", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			got, err := ParseQueryInt(r, "limit", 0, 1, 100)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
					t.Fatalf("unexpected error code: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"trims whitespace", "  phone  ", 10, "phone"},
		{"caps long input", "smartphones", 5, "smart"},
		{"no cap when maxLen zero", "smartphones", 0, "smartphones"},
		{"multi-byte runes kept whole", "téléphone", 4, "télé"},
		{"cjk runes kept whole", "日本語テスト", 3, "日本語"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeString(tc.input, tc.maxLen); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
