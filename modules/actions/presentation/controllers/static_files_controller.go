package controllers

import (
	"net/http"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/iota-uz/iota-actions/pkg/application"
)

const (
	cacheForever = "public, max-age=31536000, immutable"
	cacheNone    = "no-cache, no-store, must-revalidate"
)

// StaticFilesController serves content-hashed assets under /assets/.
type StaticFilesController struct {
	fsInstances []*hashfs.FS
	production  bool
}

func NewStaticFilesController(fsInstances []*hashfs.FS, production bool) application.Controller {
	return &StaticFilesController{
		fsInstances: fsInstances,
		production:  production,
	}
}

func (s *StaticFilesController) Key() string {
	return "/assets"
}

func (s *StaticFilesController) Register(r *mux.Router) {
	handlers := make([]http.Handler, 0, len(s.fsInstances))
	for _, fsys := range s.fsInstances {
		handlers = append(handlers, hashfs.FileServer(fsys))
	}
	cacheControl := cacheNone
	if s.production {
		cacheControl = cacheForever
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		if !s.production {
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		name := strings.TrimPrefix(r.URL.Path, "/")
		for i, fsys := range s.fsInstances {
			f, err := fsys.Open(name)
			if err != nil {
				continue
			}
			_ = f.Close()
			handlers[i].ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
	r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets", handler))
}
