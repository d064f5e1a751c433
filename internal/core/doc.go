// Package core provides fundamental types and utilities for the hockey table.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core
