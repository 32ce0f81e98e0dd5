package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	blogHandler    blogHandler
	contactHandler contactHandler
	projectHandler projectHandler
}

// ErrorResponse is the error body shape for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
