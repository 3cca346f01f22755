package models

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Status string `json:"status"`
	UserID int64  `json:"user_id"`
}

// StatusResponse is the generic success envelope returned by delete
// operations and the health check.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the generic error envelope. Every failure rendered by the
// HTTP layer uses this shape unless an endpoint defines a richer one.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailResponse is the envelope returned by a failed login attempt.
type FailResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
