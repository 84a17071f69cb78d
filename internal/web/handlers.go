package web

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"rpgme/internal/avatar"
	"rpgme/internal/session"
)

type Server struct {
	Catalog *avatar.Catalog
	Store   session.Store[avatar.Attributes]
	Tmpl    *template.Template

	// PublicOrigin, when set, is used for share links instead of the
	// request's own origin.
	PublicOrigin string
	ShareText    string
	StaticDir    string
}

const cookieName = "rpgme_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/change", s.handleChange)
	mux.HandleFunc("/state.json", s.handleState)

	mux.HandleFunc("/share/x", s.handleShareX)
	mux.HandleFunc("/share/linkedin", s.handleShareLinkedIn)
	mux.HandleFunc("/card.pdf", s.handleCard)

	staticDir := s.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	return mux
}

// GET /?seed=...&hat=...&fire=...&walking=...
// Every page load starts a fresh customizer from the query string.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")

	id := s.sessionID(r)
	if id == "" {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}

	var msg string
	if q := avatar.ParseQuery(r.URL.RawQuery); q.Has("seed") && !avatar.SeedValid(q.Get("seed")) {
		log.Printf("seed %q has non-digit characters; treating them as 0", q.Get("seed"))
		msg = "Some seed characters were not digits and were read as 0."
	}
	c := s.customizer(r, avatar.DefaultAttributes(), nil)
	c.Load(r.URL.RawQuery)

	if err := s.Store.Put(ctx, id, c.State().Attributes); err != nil {
		http.Error(w, "failed to save state", 500)
		return
	}

	if err := s.Tmpl.ExecuteTemplate(w, "layout.html", s.makeViewModel(c.State(), msg)); err != nil {
		log.Printf("render layout: %v", err)
		http.Error(w, "failed to render template", 500)
		return
	}
}

// POST /change (field, value)
// htmx: returns the #customizer fragment.
func (s *Server) handleChange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}

	attrs, id, found := s.getState(ctx, r)
	if !found {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	field, ok := avatar.ParseField(r.FormValue("field"))
	if !ok {
		http.Error(w, "unknown field", 400)
		return
	}

	var saveErr error
	c := s.customizer(r, attrs, func(st avatar.State) {
		saveErr = s.Store.Put(ctx, id, st.Attributes)
	})
	if err := c.ApplyChange(field, r.FormValue("value")); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if saveErr != nil {
		http.Error(w, "failed to save state", 500)
		return
	}

	if err := s.Tmpl.ExecuteTemplate(w, "customizer.html", s.makeViewModel(c.State(), "")); err != nil {
		log.Printf("render customizer: %v", err)
		http.Error(w, "failed to render template", 500)
		return
	}
}

// customizer rebuilds the session's customizer around attrs.
func (s *Server) customizer(r *http.Request, attrs avatar.Attributes, onChange func(avatar.State)) *avatar.Customizer {
	return avatar.NewCustomizer(avatar.Options{
		Origin:   s.origin(r),
		Catalog:  s.Catalog,
		OnChange: onChange,
	}, attrs)
}

// getState returns the session's attributes. found is false when there is
// no cookie or the session is unknown.
func (s *Server) getState(ctx context.Context, r *http.Request) (avatar.Attributes, string, bool) {
	id := s.sessionID(r)
	if id == "" {
		return avatar.Attributes{}, "", false
	}
	attrs, ok, err := s.Store.Get(ctx, id)
	if err != nil || !ok {
		return avatar.Attributes{}, id, false
	}
	return attrs, id, true
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// origin is the scheme://host share links point at.
func (s *Server) origin(r *http.Request) string {
	if s.PublicOrigin != "" {
		return s.PublicOrigin
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	u := url.URL{Scheme: scheme, Host: r.Host}
	return u.String()
}
