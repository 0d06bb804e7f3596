package server

// contextKey is an unexported key type so request-scoped values cannot
// collide with other packages.
type contextKey string

const (
	contextKeyRequestID  contextKey = "requestID"
	contextKeyAPIVersion contextKey = "apiVersion"
)
