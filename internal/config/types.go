// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultHeadLines is the default number of lines printed by head.
	DefaultHeadLines = 10
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidHeadLines is returned when head.lines is not positive.
	ErrInvalidHeadLines = errors.New("invalid head line count")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidHeadLinesError is returned when head.lines is not positive.
	InvalidHeadLinesError struct {
		Value int64
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
		// Head configures the head utility
		Head HeadConfig `json:"head" mapstructure:"head" toml:"head"`
		// Shell configures the embedded shell
		Shell ShellConfig `json:"shell" mapstructure:"shell" toml:"shell"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}

	// HeadConfig configures the head utility.
	HeadConfig struct {
		// Lines is the line count used when neither -n nor -c is given.
		Lines int64 `json:"lines" mapstructure:"lines" toml:"lines"`
	}

	// ShellConfig configures the embedded shell.
	ShellConfig struct {
		// EnableBuiltins exposes the line utilities as shell builtins (default: true)
		EnableBuiltins bool `json:"enable_builtins" mapstructure:"enable_builtins" toml:"enable_builtins"`
		// AllowHostCommands lets scripts run host binaries (default: true)
		AllowHostCommands bool `json:"allow_host_commands" mapstructure:"allow_host_commands" toml:"allow_host_commands"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Head: HeadConfig{
			Lines: DefaultHeadLines,
		},
		Shell: ShellConfig{
			EnableBuiltins:    true,
			AllowHostCommands: true,
		},
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the HeadConfig has valid fields.
func (c HeadConfig) IsValid() (bool, []error) {
	if c.Lines < 1 {
		return false, []error{&InvalidHeadLinesError{Value: c.Lines}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHeadLinesError.
func (e *InvalidHeadLinesError) Error() string {
	return fmt.Sprintf("invalid head.lines %d: must be at least 1", e.Value)
}

// Unwrap returns ErrInvalidHeadLines for errors.Is() compatibility.
func (e *InvalidHeadLinesError) Unwrap() error { return ErrInvalidHeadLines }

// IsValid returns whether the Config has valid fields.
// Shell has only bool fields and needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Head.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
