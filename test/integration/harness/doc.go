// Package harness provides utilities for integration testing the breakwise CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - BREAKWISE_HOME: Isolated per test (temp directory)
//   - BREAKWISE_DEBUG: Disabled to reduce noise
//   - BREAKWISE_DB_PATH: Removed so the database lives in BREAKWISE_HOME
package harness
