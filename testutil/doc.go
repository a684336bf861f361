// Package testutil provides seeded score generators for tests and benchmarks.
package testutil
