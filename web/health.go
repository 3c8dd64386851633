package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HealthHandler HTTP endpoint used by the hosting platform to check the bot process is alive
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes a JSON HealthResponse with the number of onboarding questions awaiting a reply
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	res := HealthResponse{Status: "ok"}
	if s.status != nil {
		res.PendingPrompts = s.status.PendingPrompts()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.Error("failed to encode health response", "err", err)
	}
}
