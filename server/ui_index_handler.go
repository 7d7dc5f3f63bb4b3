package server

import (
	"net/http"
)

// IndexHandler renders the home page. A signed-in visitor is offered the dashboard instead of
// the login and register links.
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := s.pageData("Home")
		if u, err := s.guard.Authenticate(r); err == nil {
			data.Username = u.Username
		}
		renderPage(w, r, tmpl, http.StatusOK, data)
	}
}

// PingHandler is the liveness probe
func (s *Server) PingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
	}
}
