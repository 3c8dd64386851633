package web

// StatusProvider reports the live state of the bot
type StatusProvider interface {
	PendingPrompts() int
}

// Config holds the configuration for the web server
type Config struct {
	Addr   string
	Status StatusProvider
}

// Server is the HTTP server that handles health requests
type Server struct {
	status StatusProvider
}

// HealthResponse is the body returned by the health endpoint
type HealthResponse struct {
	Status         string `json:"status"`
	PendingPrompts int    `json:"pendingPrompts"`
}
