package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>entry point</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o644))
	return dir
}

func TestSPAHandlerServesExistingFiles(t *testing.T) {
	spa := SPAHandler{StaticDir: newStaticDir(t), IndexFile: "index.html"}

	req := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	rec := httptest.NewRecorder()
	spa.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestSPAHandlerFallsBackToIndex(t *testing.T) {
	spa := SPAHandler{StaticDir: newStaticDir(t), IndexFile: "index.html"}

	for _, path := range []string{"/", "/bookings/new", "/deep/client/route", "/missing.js"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		spa.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "entry point", path)
	}
}

func TestSPAHandlerIsLowestPriority(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods("POST")
	r.PathPrefix("/").Handler(SPAHandler{StaticDir: newStaticDir(t), IndexFile: "index.html"}).Methods("GET")

	// the API route wins over the catch-all
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	// anything else falls through to the SPA entry point
	req = httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "entry point")
}
