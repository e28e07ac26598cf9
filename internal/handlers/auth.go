package handlers

import (
	"net/http"
	"strings"

	"github.com/eventhub-app/backend/internal/models"
)

// Login handles POST /api/auth/login
//
// Credentials are checked against the session store's fixed demo table.
// Any failure — unknown email, wrong password — collapses to the same 401
// so the response never says which part was wrong.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !s.Session.Login(req.Email, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	respond(w, http.StatusOK, s.Session.Current())
}

// Register handles POST /api/auth/register
//
// Registration always succeeds: the session store keeps only the current
// identity, there is no account directory to collide with. An omitted role
// defaults to regular user.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if req.Role != "" && req.Role != models.RoleUser && req.Role != models.RoleOrganizer {
		respondError(w, http.StatusBadRequest, "role must be 'user' or 'organizer'")
		return
	}

	s.Session.Register(req.Name, req.Email, req.Password, req.Role)
	respond(w, http.StatusCreated, s.Session.Current())
}

// Logout handles POST /api/auth/logout
// Clearing an already-clear session is fine, so this never fails.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user := s.Session.Current()
	if user == nil {
		respondError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	respond(w, http.StatusOK, user)
}
