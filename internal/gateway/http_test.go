package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler, prefix string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(Options{BaseURL: srv.URL, APIPrefix: prefix, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestFetchProviders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/providers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []string{"P2", "P1"})
	})
	c := newTestClient(t, mux, "/api")

	got, err := c.FetchProviders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"P2", "P1"}, got, "server order is kept")
}

func TestFetchCountriesEncodesQuery(t *testing.T) {
	var gotProvider string
	mux := http.NewServeMux()
	mux.HandleFunc("/countries", func(w http.ResponseWriter, r *http.Request) {
		gotProvider = r.URL.Query().Get("provider")
		writeJSON(w, []string{"COSTA RICA"})
	})
	c := newTestClient(t, mux, "")

	got, err := c.FetchCountries(context.Background(), "Proveedor 1 & Co")
	require.NoError(t, err)
	assert.Equal(t, "Proveedor 1 & Co", gotProvider)
	assert.Equal(t, []string{"COSTA RICA"}, got)
}

func TestFetchEventsKeepsRecordsVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "P1", r.URL.Query().Get("provider"))
		assert.Equal(t, "C2", r.URL.Query().Get("country"))
		w.Write([]byte(`[{"id":1,"title":"x","extra":{"a":[1,2]}}]`))
	})
	c := newTestClient(t, mux, "/api")

	got, err := c.FetchEvents(context.Background(), "P1", "C2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"id":1,"title":"x","extra":{"a":[1,2]}}`, string(got[0].Raw()))
}

func TestFetchEventsNullIsEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})
	c := newTestClient(t, mux, "/api")

	got, err := c.FetchEvents(context.Background(), "P1", "C1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNon2xxIsUnauthenticated(t *testing.T) {
	statuses := []int{
		http.StatusSeeOther,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusInternalServerError,
	}
	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/countries", func(w http.ResponseWriter, r *http.Request) {
				if status == http.StatusSeeOther {
					http.Redirect(w, r, "/login", status)
					return
				}
				w.WriteHeader(status)
				w.Write([]byte("not json at all"))
			})
			// Following the redirect would land here with a 200.
			mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>login</html>"))
			})
			c := newTestClient(t, mux, "/api")

			_, err := c.FetchCountries(context.Background(), "P1")
			require.Error(t, err)
			assert.True(t, IsUnauthenticated(err))

			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, KindUnauthenticated, gerr.Kind)
			assert.Equal(t, status, gerr.Status)
			assert.Equal(t, "countries", gerr.Op)
		})
	}
}

func TestMalformedPayloadIsGatewayError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/providers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	})
	c := newTestClient(t, mux, "/api")

	_, err := c.FetchProviders(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthenticated(err))

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, KindGateway, gerr.Kind)
}

func TestNetworkErrorIsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewHTTPClient(Options{BaseURL: base, APIPrefix: "/api", Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.FetchProviders(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthenticated(err))
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, KindGateway, gerr.Kind)
	assert.Zero(t, gerr.Status)
}

func TestCancelledContextIsGatewayError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/providers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []string{"P1"})
	})
	c := newTestClient(t, mux, "/api")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchProviders(ctx)
	require.Error(t, err)
	assert.False(t, IsUnauthenticated(err))
}

func TestLoginStoresSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "brand1" || r.PostForm.Get("password") != "secret" {
			w.Write([]byte("<form>Credenciales incorrectas</form>"))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "ok", Path: "/"})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
	mux.HandleFunc("/api/providers", func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("session"); err != nil || ck.Value != "ok" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		writeJSON(w, []string{"P1"})
	})
	c := newTestClient(t, mux, "/api")
	ctx := context.Background()

	_, err := c.FetchProviders(ctx)
	require.True(t, IsUnauthenticated(err))

	assert.ErrorIs(t, c.Login(ctx, "brand1", "wrong"), ErrBadCredentials)
	require.NoError(t, c.Login(ctx, "brand1", "secret"))

	got, err := c.FetchProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1"}, got)
}

func TestDownloadICS(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ics", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "COSTA RICA", r.URL.Query().Get("country"))
		w.Header().Set("Content-Disposition", `attachment; filename="pedidos_COSTA RICA.ics"`)
		w.Write([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
	})
	c := newTestClient(t, mux, "/api")

	var buf bytes.Buffer
	name, err := c.DownloadICS(context.Background(), "P1", "COSTA RICA", &buf)
	require.NoError(t, err)
	assert.Equal(t, "pedidos_COSTA RICA.ics", name)
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
}

func TestICSURL(t *testing.T) {
	c, err := NewHTTPClient(Options{BaseURL: "http://example.test/", APIPrefix: "api/"})
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api/ics?country=COSTA+RICA&provider=P1", c.ICSURL("P1", "COSTA RICA"))
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPClient(Options{BaseURL: "localhost:8000"})
	assert.Error(t, err)
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "a.ics", attachmentName(`attachment; filename="a.ics"`, "x"))
	assert.Equal(t, "b.ics", attachmentName(`attachment; filename=b.ics; size=3`, "x"))
	assert.Equal(t, "x", attachmentName(`inline`, "x"))
	assert.Equal(t, "pedidos_a;b.ics", attachmentName(`attachment; filename="pedidos_a;b.ics"`, "x"))
	assert.Equal(t, `say "hi".ics`, attachmentName(`attachment; filename="say \"hi\".ics"`, "x"))
	assert.Equal(t, "evil.ics", attachmentName(`attachment; filename="../../evil.ics"`, "x"))
	assert.Equal(t, "x", attachmentName(`attachment; filename=""`, "x"))
	assert.Equal(t, "x", attachmentName(`attachment; filename="unterminated`, "x"))
}

func TestErrorIs(t *testing.T) {
	err := unauthenticated("events", 303)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.NotErrorIs(t, failure("events", errors.New("boom")), ErrUnauthenticated)
	assert.Equal(t, "events: unauthenticated (status 303)", err.Error())
}
