package v1

import (
	"net/http"

	"github.com/vmunix/catalogdash/internal/catalog"
)

type datasetHandler func(w http.ResponseWriter, r *http.Request, ds *catalog.Dataset)

// withDataset loads the catalog before calling next, answering with a
// mapped error status when the load fails.
func (s *Server) withDataset(next datasetHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, err := s.deps.Loader.Load(r.Context())
		if err != nil {
			s.writeLoadError(w, err)
			return
		}
		next(w, r, ds)
	}
}
