// Package gcp adapts Google Cloud Logging to the cloudlog.Writer interface.
//
// The cloud client owns authentication, batching, retries, and the wire
// protocol; this package only maps entries between the two representations.
package gcp
