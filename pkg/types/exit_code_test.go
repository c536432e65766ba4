// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ExitCode
		wantValid bool
	}{
		{name: "zero is valid", value: 0, wantValid: true},
		{name: "usage is valid", value: ExitUsage, wantValid: true},
		{name: "255 is valid", value: 255, wantValid: true},
		{name: "negative is invalid", value: -1, wantValid: false},
		{name: "256 is invalid", value: 256, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err == nil) != tt.wantValid {
				t.Fatalf("ExitCode(%d).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
			}
			if !tt.wantValid && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("error does not wrap ErrInvalidExitCode: %v", err)
			}
		})
	}
}

func TestExitCodeClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ExitCode
		want ExitCode
	}{
		{0, 0},
		{2, 2},
		{255, 255},
		{-3, ExitFailure},
		{1000, ExitFailure},
	}

	for _, tt := range tests {
		if got := tt.code.Clamp(); got != tt.want {
			t.Errorf("ExitCode(%d).Clamp() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false")
	}
	if ExitFailure.IsSuccess() {
		t.Error("ExitFailure.IsSuccess() = true")
	}
	if got := ExitUsage.String(); got != "2" {
		t.Errorf("ExitUsage.String() = %q, want %q", got, "2")
	}
}
