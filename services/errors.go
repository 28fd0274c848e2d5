package services

// ServiceError is a typed error with an HTTP status code. Fields carries
// per-field validation messages for form-style failures, and Redirect tells
// the client where to go when a flow is abandoned (empty cart at checkout).
type ServiceError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	Redirect   string
}

func (e *ServiceError) Error() string {
	return e.Message
}
