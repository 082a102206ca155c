// Package middleware provides HTTP request logging through a cloudlog.Logger
// for net/http handler chains and Gin engines.
package middleware
