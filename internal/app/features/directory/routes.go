package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a chi.Router with the directory endpoints mounted.
//
// When mounted at /api/links:
//   - GET /api/links/homepage - homepage aggregate
//   - /api/links/categories - category CRUD
//   - /api/links/folders - folder CRUD; GET {id} is the folder detail aggregate
//   - /api/links/subheadings - subheading CRUD
//   - /api/links/items - link CRUD
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/homepage", h.homepage)

	r.Route("/categories", func(cr chi.Router) {
		cr.Get("/", h.listCategories)
		cr.Post("/", h.createCategory)
		cr.Get("/{id}", h.getCategory)
		cr.Put("/{id}", h.updateCategory)
		cr.Delete("/{id}", h.deleteCategory)
	})

	r.Route("/folders", func(fr chi.Router) {
		fr.Get("/", h.listFolders)
		fr.Post("/", h.createFolder)
		fr.Get("/{id}", h.getFolder)
		fr.Put("/{id}", h.updateFolder)
		fr.Delete("/{id}", h.deleteFolder)
	})

	r.Route("/subheadings", func(sr chi.Router) {
		sr.Get("/", h.listSubheadings)
		sr.Post("/", h.createSubheading)
		sr.Get("/{id}", h.getSubheading)
		sr.Put("/{id}", h.updateSubheading)
		sr.Delete("/{id}", h.deleteSubheading)
	})

	r.Route("/items", func(ir chi.Router) {
		ir.Get("/", h.listLinks)
		ir.Post("/", h.createLink)
		ir.Get("/{id}", h.getLink)
		ir.Put("/{id}", h.updateLink)
		ir.Delete("/{id}", h.deleteLink)
	})

	return r
}
