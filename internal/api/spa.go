package api

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves files out of StaticDir and falls back to IndexFile for
// any path that does not name one, so client-side routes deep-link
// correctly. It is registered as the lowest-priority catch-all, after the
// API routes.
type SPAHandler struct {
	StaticDir string
	IndexFile string
}

func (h SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean relative to "/" so "../" cannot escape StaticDir.
	path := filepath.Join(h.StaticDir, filepath.Clean("/"+r.URL.Path))

	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.StaticDir, h.IndexFile))
		return
	}
	http.ServeFile(w, r, path)
}
