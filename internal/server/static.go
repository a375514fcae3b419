package server

import (
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// StaticServer serves the built frontend from a local directory with an
// index.html fallback for client-side routes
type StaticServer struct {
	dir    string
	fs     http.Handler
	logger *zap.Logger
}

func NewStaticServer(dir string, logger *zap.Logger) *StaticServer {
	if _, err := os.Stat(dir); err != nil {
		logger.Warn("Static directory does not exist, build the frontend first",
			zap.String("dir", dir),
			zap.Error(err),
		)
	}
	return &StaticServer{
		dir:    dir,
		fs:     http.FileServer(http.Dir(dir)),
		logger: logger,
	}
}

// ServeHTTP implements http.Handler
func (s *StaticServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		s.fs.ServeHTTP(w, r)
		return
	}

	// Unknown paths fall back to index.html so client-side routing works
	index := filepath.Join(s.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		s.logger.Error("Frontend not built", zap.String("dir", s.dir))
		http.Error(w, "Frontend not built", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, index)
}
