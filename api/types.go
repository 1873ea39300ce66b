package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler    siteHandler
	projectHandler projectHandler
	contactHandler contactHandler
	feedHandler    feedHandler
	adminHandler   adminHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error  string   `json:"error"`
	Status string   `json:"status"`
	Field  string   `json:"field,omitempty"`
	Errors []string `json:"errors,omitempty"`
}
