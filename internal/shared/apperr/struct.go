package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // safe to show to the visitor
	Fields    map[string]string // per-field validation errors (optional)
	Err       error             // internal cause, logged only
}
