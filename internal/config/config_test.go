package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STOREFRONT_ADDR", "API_BASE_URL", "SEARCH_DEBOUNCE", "FREE_SHIPPING_THRESHOLD", "DEFAULT_LANG"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.API.BaseURL != "http://localhost:8000/api/v1" {
		t.Fatalf("unexpected api base %q", cfg.API.BaseURL)
	}
	if cfg.Storefront.SearchDebounce != 400*time.Millisecond {
		t.Fatalf("unexpected debounce %v", cfg.Storefront.SearchDebounce)
	}
	if cfg.Storefront.FreeShippingThreshold != 500 {
		t.Fatalf("unexpected threshold %v", cfg.Storefront.FreeShippingThreshold)
	}
	if cfg.DefaultLang != "ar" {
		t.Fatalf("unexpected default lang %q", cfg.DefaultLang)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api/v1")
	t.Setenv("SEARCH_DEBOUNCE", "250ms")
	t.Setenv("FREE_SHIPPING_THRESHOLD", "750")
	t.Setenv("API_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.API.BaseURL != "https://api.example.com/api/v1" {
		t.Fatalf("override ignored: %q", cfg.API.BaseURL)
	}
	if cfg.Storefront.SearchDebounce != 250*time.Millisecond {
		t.Fatalf("unexpected debounce %v", cfg.Storefront.SearchDebounce)
	}
	if cfg.Storefront.FreeShippingThreshold != 750 {
		t.Fatalf("unexpected threshold %v", cfg.Storefront.FreeShippingThreshold)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Fatalf("invalid duration should fall back, got %v", cfg.API.Timeout)
	}
}
