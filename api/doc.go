// Package api provides the HTTP layer for the text preprocessing service.
// It assembles the route table and the middleware chain around net/http.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: route mux assembly and middleware chain
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// - GET  /            interactive web form
// - GET  /health      liveness probe
// - GET  /metrics     Prometheus exposition
// - POST /api/clean   fetch, clean and analyze a document by URL
// - POST /api/analyze analyze caller-supplied text
//
// # Middleware
//
// The middleware chain, outermost first:
// - CORS handling
// - Request logging with unique request IDs
// - Prometheus request metrics
// - Panic recovery returning JSON 500s
//
// # Usage Example
//
//	mux, handler := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//
//	handlers.NewHomeHandler().RegisterRoutes(mux)
//	handlers.NewHealthHandler().RegisterRoutes(mux)
//	handlers.NewPreprocessHandler(preprocessService).RegisterRoutes(mux)
//
//	http.ListenAndServe(":8000", handler)
//
// # Error Handling
//
// Failures share one JSON shape:
//
//	{
//	    "success": false,
//	    "error": "validation error on field 'url': URL cannot be empty"
//	}
//
// Domain errors map to HTTP status codes: validation and empty input
// errors return 400, upstream fetch failures return 502, unknown routes
// return 404 and anything unexpected returns 500.
package api
