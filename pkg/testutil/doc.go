// Package testutil provides utilities for testing helpdoc components.
//
// Key components:
//   - TestEnvironment: points the XDG directories at temp dirs and clears
//     HELPDOC_* variables so config and log files never touch the user's
//   - CreateFile, CreateDir: fixture helpers that fail the test on error
//
// Usage guidelines:
//   - Any test that loads configuration or sets up logging should start with
//     NewTestEnvironment
//   - All test data should be defined inline, not in external files
package testutil
