// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ColorScheme
		want  bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{"", false},
		{"Dark", false},
		{"solarized", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Fatalf("IsValid() = %v, want %v", valid, tt.want)
			}
			if tt.want {
				return
			}
			if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorScheme) {
				t.Errorf("IsValid() errors = %v, want ErrInvalidColorScheme", errs)
			}
			var csErr *InvalidColorSchemeError
			if !errors.As(errs[0], &csErr) || csErr.Value != tt.value {
				t.Errorf("expected *InvalidColorSchemeError for %q, got %v", tt.value, errs[0])
			}
		})
	}
}

func TestHeadConfig_IsValid(t *testing.T) {
	t.Parallel()

	for _, lines := range []int64{1, 10, 1 << 40} {
		if valid, errs := (HeadConfig{Lines: lines}).IsValid(); !valid {
			t.Errorf("HeadConfig{Lines: %d}.IsValid() = false: %v", lines, errs)
		}
	}

	for _, lines := range []int64{0, -1} {
		valid, errs := HeadConfig{Lines: lines}.IsValid()
		if valid {
			t.Fatalf("HeadConfig{Lines: %d} should be invalid", lines)
		}
		if !errors.Is(errs[0], ErrInvalidHeadLines) {
			t.Errorf("error = %v, want ErrInvalidHeadLines", errs[0])
		}
	}
}

func TestConfig_IsValid_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UI.ColorScheme = "neon"
	cfg.Head.Lines = -5

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("IsValid() = true, want false")
	}

	err := errs[0]
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
	}
	if !errors.Is(err, ErrInvalidColorScheme) || !errors.Is(err, ErrInvalidHeadLines) {
		t.Errorf("error should expose both field errors, got %v", err)
	}

	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got %T", err)
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %d, want 2", len(cfgErr.FieldErrors))
	}
}
