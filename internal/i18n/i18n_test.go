package i18n

import (
	"strings"
	"testing"
)

func TestT_Fallbacks(t *testing.T) {
	if got := T("ar", "cart"); got != "السلة" {
		t.Fatalf("unexpected arabic cart label %q", got)
	}
	if got := T("fr", "cart"); got != "Cart" {
		t.Fatalf("unsupported language should fall back to english, got %q", got)
	}
	if got := T("en", "no-such-key"); got != "no-such-key" {
		t.Fatalf("missing key should echo itself, got %q", got)
	}
}

func TestDictionariesHaveSameKeys(t *testing.T) {
	for key := range dictionaries[English] {
		if _, ok := dictionaries[Arabic][key]; !ok {
			t.Errorf("arabic dictionary missing %q", key)
		}
	}
	for key := range dictionaries[Arabic] {
		if _, ok := dictionaries[English][key]; !ok {
			t.Errorf("english dictionary missing %q", key)
		}
	}
}

func TestNegotiate(t *testing.T) {
	cases := []struct {
		explicit, header, def, want string
	}{
		{"en", "ar-EG", "ar", "en"},
		{"", "en-US,en;q=0.9", "ar", "en"},
		{"", "ar-SA", "en", "ar"},
		{"", "", "en", "en"},
		{"xx", "", "", "ar"},
	}
	for _, tc := range cases {
		if got := Negotiate(tc.explicit, tc.header, tc.def); got != tc.want {
			t.Fatalf("Negotiate(%q,%q,%q) = %q, want %q", tc.explicit, tc.header, tc.def, got, tc.want)
		}
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("ar") || IsRTL("en") {
		t.Fatalf("unexpected direction")
	}
	if Dir("ar") != "rtl" || Dir("en") != "ltr" {
		t.Fatalf("unexpected dir attribute")
	}
}

func TestFormatPrice(t *testing.T) {
	en := FormatPrice("en", 1250)
	if !strings.HasSuffix(en, " EGP") || !strings.Contains(en, "250.00") {
		t.Fatalf("unexpected english price %q", en)
	}
	ar := FormatPrice("ar", 99.5)
	if !strings.HasSuffix(ar, " جنيه") || !strings.HasPrefix(ar, "99.50") {
		t.Fatalf("unexpected arabic price %q", ar)
	}
}
