package models

// MessageResponse is the banner returned by GET /.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is returned after a successful login. No session or token
// is issued.
type LoginResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Plan  Plan   `json:"plan"`
}

// ContactResponse acknowledges a stored contact message.
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ErrorResponse is the body of every non-2xx response. Detail is either a
// human-readable string or, for validation failures, a list of
// [FieldViolation].
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// FieldViolation names one offending request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Diagnostics is the body of GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
