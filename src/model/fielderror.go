package model

// FieldError is one per-field request-validation failure. Loc is the
// location path of the offending value, first segment naming the request
// part (body, query, path) and the rest the field path within it.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}
