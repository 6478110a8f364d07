package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

// spaHandler serves a built single-page frontend. Paths that match no file get index.html so
// the client-side router can take over.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticPath, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))

	fi, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && fi.IsDir()) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}

// RegisterStaticRoutes serves dir for every GET outside /api not matched by an earlier route.
// Unknown /api paths and non-GET requests still get a 404. Register it last.
func RegisterStaticRoutes(r *mux.Router, dir string) {
	r.MatcherFunc(isFrontendRequest).Handler(spaHandler{staticPath: dir, indexPath: "index.html"})
}

func isFrontendRequest(r *http.Request, _ *mux.RouteMatch) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	return r.URL.Path != "/api" && !strings.HasPrefix(r.URL.Path, "/api/")
}
