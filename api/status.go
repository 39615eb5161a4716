package api

// ErrorResponse is the body of every non-2xx answer produced by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
