// Package server is the HTTP backend: cookie sessions, the brand scoped
// JSON endpoints and the ICS export.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sainthonore/pedidos/internal/auth"
	"github.com/sainthonore/pedidos/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookie = "session"
	eventColor    = "#f58220"
)

// Store is the read side of the order store.
type Store interface {
	Providers(ctx context.Context, brands []string) ([]string, error)
	Countries(ctx context.Context, brands []string, provider string) ([]string, error)
	Orders(ctx context.Context, brands []string, provider, country string) ([]store.Order, error)
}

type Server struct {
	accounts *auth.Accounts
	signer   *auth.Signer
	store    Store
	notices  *Broadcaster
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewServer(accounts *auth.Accounts, signer *auth.Signer, st Store, log logrus.FieldLogger) *Server {
	return &Server{
		accounts: accounts,
		signer:   signer,
		store:    st,
		notices:  NewBroadcaster(log),
		log:      log,
		now:      time.Now,
	}
}

// SetupRoutes registers every route. The JSON endpoints answer both with and
// without the /api prefix.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/{$}", s.requireUser(s.handleHome))

	for _, prefix := range []string{"/api", ""} {
		mux.HandleFunc("GET "+prefix+"/providers", s.requireUser(s.handleProviders))
		mux.HandleFunc("GET "+prefix+"/countries", s.requireUser(s.handleCountries))
		mux.HandleFunc("GET "+prefix+"/events", s.requireUser(s.handleEvents))
		mux.HandleFunc("GET "+prefix+"/ics", s.requireUser(s.handleICS))
		mux.HandleFunc("GET "+prefix+"/ws", s.requireUser(s.handleNotices))
	}
}

// Notices returns the broadcaster behind the /ws endpoint.
func (s *Server) Notices() *Broadcaster { return s.notices }

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.SetupRoutes(mux)
	return requestID(accessLog(s.log, securityHeaders(mux)))
}

type userHandler func(w http.ResponseWriter, r *http.Request, acct auth.Account)

// currentUser resolves the session cookie to a configured account.
func (s *Server) currentUser(r *http.Request) (auth.Account, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return auth.Account{}, false
	}
	name, err := s.signer.Verify(c.Value)
	if err != nil {
		entry(r, s.log).WithError(err).Debug("session rejected")
		return auth.Account{}, false
	}
	return s.accounts.Lookup(name)
}

func (s *Server) requireUser(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct, ok := s.currentUser(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, acct)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if _, ok := s.currentUser(r); ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.renderLogin(w, r, "", "")
	case http.MethodPost:
		username := strings.TrimSpace(r.PostFormValue("username"))
		password := r.PostFormValue("password")
		acct, ok := s.accounts.Authenticate(username, password)
		if !ok {
			entry(r, s.log).WithField("user", username).Info("login rejected")
			s.renderLogin(w, r, username, badCredentials)
			return
		}
		token, err := s.signer.Sign(acct.Username)
		if err != nil {
			s.internalError(w, r, "login", err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(s.signer.MaxAge() / time.Second),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		entry(r, s.log).WithField("user", acct.Username).Info("login")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request, acct auth.Account) {
	s.renderHome(w, r, acct)
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request, acct auth.Account) {
	providers, err := s.store.Providers(r.Context(), acct.Brands)
	if err != nil {
		s.internalError(w, r, "providers", err)
		return
	}
	s.writeJSON(w, r, providers)
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request, acct auth.Account) {
	q, ok := requireQuery(w, r, "provider")
	if !ok {
		return
	}
	countries, err := s.store.Countries(r.Context(), acct.Brands, q["provider"])
	if err != nil {
		s.internalError(w, r, "countries", err)
		return
	}
	s.writeJSON(w, r, countries)
}

type event struct {
	Title           string `json:"title"`
	Start           string `json:"start"`
	AllDay          bool   `json:"allDay"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request, acct auth.Account) {
	q, ok := requireQuery(w, r, "provider", "country")
	if !ok {
		return
	}
	orders, err := s.store.Orders(r.Context(), acct.Brands, q["provider"], q["country"])
	if err != nil {
		s.internalError(w, r, "events", err)
		return
	}
	events := make([]event, 0, len(orders))
	for _, o := range orders {
		events = append(events, event{
			Title:           orderTitle(o),
			Start:           o.Date.Format("2006-01-02"),
			AllDay:          true,
			BackgroundColor: eventColor,
			BorderColor:     eventColor,
		})
	}
	s.writeJSON(w, r, events)
}

func (s *Server) handleICS(w http.ResponseWriter, r *http.Request, acct auth.Account) {
	q, ok := requireQuery(w, r, "provider", "country")
	if !ok {
		return
	}
	provider, country := q["provider"], q["country"]
	orders, err := s.store.Orders(r.Context(), acct.Brands, provider, country)
	if err != nil {
		s.internalError(w, r, "ics", err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8; method=PUBLISH")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", icsFilename(country)))
	if err := WriteICS(w, Calendar{Provider: provider, Country: country, Orders: orders, Stamp: s.now()}); err != nil {
		entry(r, s.log).WithError(err).Warn("ics write failed")
	}
}

func orderTitle(o store.Order) string {
	return o.Brand + " – PEDIDO"
}

// requireQuery returns the named query parameters, answering 400 when one is
// missing or blank.
func requireQuery(w http.ResponseWriter, r *http.Request, names ...string) (map[string]string, bool) {
	out := make(map[string]string, len(names))
	for _, name := range names {
		v := strings.TrimSpace(r.URL.Query().Get(name))
		if v == "" {
			http.Error(w, "missing query parameter: "+name, http.StatusBadRequest)
			return nil, false
		}
		out[name] = v
	}
	return out, true
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		entry(r, s.log).WithError(err).Warn("json encode failed")
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	entry(r, s.log).WithError(err).WithField("op", op).Error("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// ListenAndServe serves h on addr until ctx ends, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
