package rest

// ErrorResponse is the JSON body returned for all API errors.
// Details is only populated when the server runs in development mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
