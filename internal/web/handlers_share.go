package web

import (
	"encoding/json"
	"log"
	"net/http"

	"rpgme/internal/avatar"
	"rpgme/internal/card"
)

const cardTitle = "Character Card"

// sessionState loads the current session's state for a GET endpoint. It
// writes the error response itself and returns false when there is none.
func (s *Server) sessionState(w http.ResponseWriter, r *http.Request) (avatar.State, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return avatar.State{}, false
	}
	attrs, _, found := s.getState(r.Context(), r)
	if !found {
		http.Redirect(w, r, "/", http.StatusFound)
		return avatar.State{}, false
	}
	return s.customizer(r, attrs, nil).State(), true
}

// GET /state.json
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	st, ok := s.sessionState(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		log.Printf("encode state: %v", err)
	}
}

// GET /share/x
func (s *Server) handleShareX(w http.ResponseWriter, r *http.Request) {
	st, ok := s.sessionState(w, r)
	if !ok {
		return
	}
	http.Redirect(w, r, avatar.ShareOnX(st.URL, s.ShareText), http.StatusFound)
}

// GET /share/linkedin
func (s *Server) handleShareLinkedIn(w http.ResponseWriter, r *http.Request) {
	st, ok := s.sessionState(w, r)
	if !ok {
		return
	}
	http.Redirect(w, r, avatar.ShareOnLinkedIn(st.URL), http.StatusFound)
}

// GET /card.pdf
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	st, ok := s.sessionState(w, r)
	if !ok {
		return
	}
	pdf, err := card.Generate(st, cardTitle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="avatar-`+st.Seed+`.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("write card: %v", err)
	}
}
