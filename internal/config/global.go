// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the platform config directory when non-empty.
var configDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride makes ConfigDir return dir. Tests use it because
// os.UserHomeDir() does not follow HOME on every platform.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
