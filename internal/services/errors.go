package services

// Error taxonomy shared by all services. Handlers map these to HTTP status
// codes; anything else is treated as a persistence failure and reported
// with a generic message so raw database errors never reach clients.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }
