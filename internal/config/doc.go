// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/linetools/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/linetools/config.cue on macOS, %APPDATA%\linetools\config.cue
// on Windows), falling back to ./config.cue. LINETOOLS_* environment variables override
// file values, e.g. LINETOOLS_HEAD_LINES=20.
//
// Files are validated against an embedded CUE schema (config_schema.cue) before they are
// merged, so unknown keys and out-of-range values are rejected with the offending field path.
package config
