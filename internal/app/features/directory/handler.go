package directory

import (
	"errors"
	"net/http"

	"github.com/dalemusser/stratalinks/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the JSON endpoints for the link directory.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

// NewHandler creates a new directory Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    NewService(db),
		logger: logger,
	}
}

// writeError maps service errors onto HTTP responses. notFoundMsg is used
// for the not-found case so each entity keeps its own wording. Anything
// unclassified is logged server-side and reported generically.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var ve *ValidationError
	var ce *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		jsonutil.NotFound(w, notFoundMsg)
	case errors.As(err, &ve):
		jsonutil.BadRequest(w, ve.Msg)
	case errors.As(err, &ce):
		jsonutil.Conflict(w, ce.Msg)
	default:
		h.logger.Error("directory request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		jsonutil.InternalError(w, "Internal server error")
	}
}

// homepage handles GET /homepage.
func (h *Handler) homepage(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Homepage(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Homepage data not found")
		return
	}
	jsonutil.OK(w, "Homepage data retrieved", data)
}

/* ------------------------------- Categories ------------------------------ */

// listCategories handles GET /categories.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Category not found")
		return
	}
	jsonutil.OK(w, "Categories retrieved", data)
}

// getCategory handles GET /categories/{id}.
func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Category not found")
		return
	}
	jsonutil.OK(w, "Category retrieved", data)
}

// createCategory handles POST /categories.
func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in CreateCategoryRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.CreateCategory(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, "Category not found")
		return
	}
	jsonutil.Created(w, "Category created", data)
}

// updateCategory handles PUT /categories/{id}.
func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var in UpdateCategoryRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.UpdateCategory(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err, "Category not found")
		return
	}
	jsonutil.OK(w, "Category updated", data)
}

// deleteCategory handles DELETE /categories/{id}.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Category not found")
		return
	}
	jsonutil.OK(w, "Category deleted", nil)
}

/* -------------------------------- Folders -------------------------------- */

// listFolders handles GET /folders with an optional category_id query.
func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ListFolders(r.Context(), r.URL.Query().Get("category_id"))
	if err != nil {
		h.writeError(w, r, err, "Folder not found")
		return
	}
	jsonutil.OK(w, "Folders retrieved", data)
}

// getFolder handles GET /folders/{id}. It returns the folder detail
// aggregate: the folder, its subheadings with nested links, and its
// direct links.
func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.FolderDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Folder not found")
		return
	}
	jsonutil.OK(w, "Folder detail retrieved", data)
}

// createFolder handles POST /folders.
func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var in CreateFolderRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.CreateFolder(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, "Folder not found")
		return
	}
	jsonutil.Created(w, "Folder created", data)
}

// updateFolder handles PUT /folders/{id}.
func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	var in UpdateFolderRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.UpdateFolder(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err, "Folder not found")
		return
	}
	jsonutil.OK(w, "Folder updated", data)
}

// deleteFolder handles DELETE /folders/{id}.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteFolder(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Folder not found")
		return
	}
	jsonutil.OK(w, "Folder deleted", nil)
}

/* ------------------------------ Subheadings ------------------------------ */

// listSubheadings handles GET /subheadings.
func (h *Handler) listSubheadings(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ListSubheadings(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Subheading not found")
		return
	}
	jsonutil.OK(w, "Subheadings retrieved", data)
}

// getSubheading handles GET /subheadings/{id}.
func (h *Handler) getSubheading(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.GetSubheading(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Subheading not found")
		return
	}
	jsonutil.OK(w, "Subheading retrieved", data)
}

// createSubheading handles POST /subheadings.
func (h *Handler) createSubheading(w http.ResponseWriter, r *http.Request) {
	var in CreateSubheadingRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.CreateSubheading(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, "Subheading not found")
		return
	}
	jsonutil.Created(w, "Subheading created", data)
}

// updateSubheading handles PUT /subheadings/{id}.
func (h *Handler) updateSubheading(w http.ResponseWriter, r *http.Request) {
	var in UpdateSubheadingRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.UpdateSubheading(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err, "Subheading not found")
		return
	}
	jsonutil.OK(w, "Subheading updated", data)
}

// deleteSubheading handles DELETE /subheadings/{id}.
func (h *Handler) deleteSubheading(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSubheading(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Subheading not found")
		return
	}
	jsonutil.OK(w, "Subheading deleted", nil)
}

/* --------------------------------- Links --------------------------------- */

// listLinks handles GET /items with an optional folder_id query.
func (h *Handler) listLinks(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ListLinks(r.Context(), r.URL.Query().Get("folder_id"))
	if err != nil {
		h.writeError(w, r, err, "Link not found")
		return
	}
	jsonutil.OK(w, "Links retrieved", data)
}

// getLink handles GET /items/{id}.
func (h *Handler) getLink(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.GetLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Link not found")
		return
	}
	jsonutil.OK(w, "Link retrieved", data)
}

// createLink handles POST /items.
func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	var in CreateLinkRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.CreateLink(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, "Link not found")
		return
	}
	jsonutil.Created(w, "Link created", data)
}

// updateLink handles PUT /items/{id}.
func (h *Handler) updateLink(w http.ResponseWriter, r *http.Request) {
	var in UpdateLinkRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	data, err := h.svc.UpdateLink(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err, "Link not found")
		return
	}
	jsonutil.OK(w, "Link updated", data)
}

// deleteLink handles DELETE /items/{id}.
func (h *Handler) deleteLink(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteLink(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Link not found")
		return
	}
	jsonutil.OK(w, "Link deleted", nil)
}
