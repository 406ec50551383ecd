// Package middleware holds the HTTP middleware shared by every route: the
// bearer-token gate, request logging, trace propagation and metrics.
package middleware
