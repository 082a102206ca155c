// Package testutil provides test doubles for the cloudlog backend boundary.
package testutil
