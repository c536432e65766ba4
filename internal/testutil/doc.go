// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include file fixtures (MustWriteFile, WriteFiles), directory
// operations (MustMkdirAll), resource cleanup (MustClose) and configuration
// isolation (IsolateConfig).
package testutil
