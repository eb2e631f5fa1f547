package directory

import "github.com/dalemusser/stratalinks/internal/app/system/patch"

// Public DTO field names are a stable contract with the frontend: entity IDs
// are exposed as <entity>_id, creation times as timestamp (RFC 3339), and a
// link's stored URL as "link". Internal storage names never leak.

// Category is the public shape of a directory category.
type Category struct {
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Weight     int    `json:"weight"`
	Timestamp  string `json:"timestamp"`
}

// Folder is the public shape of a directory folder.
type Folder struct {
	FolderID   string `json:"folder_id"`
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Weight     int    `json:"weight"`
	Timestamp  string `json:"timestamp"`
}

// Subheading is the public shape of a folder subheading.
type Subheading struct {
	SubheadingID string `json:"subheading_id"`
	FolderID     string `json:"folder_id"`
	Title        string `json:"title"`
	Weight       int    `json:"weight"`
	Timestamp    string `json:"timestamp"`
}

// Link is the public shape of a directory link.
type Link struct {
	LinkID       string  `json:"link_id"`
	FolderID     *string `json:"folder_id"`
	SubheadingID *string `json:"subheading_id"`
	Title        string  `json:"title"`
	Link         string  `json:"link"`
	Weight       int     `json:"weight"`
	Timestamp    string  `json:"timestamp"`
}

// HomepageData is the top-level directory view: every category and folder,
// plus the links attached to no folder.
type HomepageData struct {
	Categories   []Category `json:"categories"`
	Folders      []Folder   `json:"folders"`
	GeneralLinks []Link     `json:"general_links"`
}

// SubheadingWithLinks is a subheading with its nested links.
type SubheadingWithLinks struct {
	Subheading
	Links []Link `json:"links"`
}

// FolderDetailData is the folder view: the folder itself, its subheadings
// with nested links, and its direct links (no subheading).
type FolderDetailData struct {
	Folder      Folder                `json:"folder"`
	Subheadings []SubheadingWithLinks `json:"subheadings"`
	DirectLinks []Link                `json:"direct_links"`
}

// CreateCategoryRequest is the body for POST /categories.
type CreateCategoryRequest struct {
	Title  string `json:"title"`
	Weight int    `json:"weight"`
}

// UpdateCategoryRequest is the body for PUT /categories/{id}.
// Nil fields are left untouched.
type UpdateCategoryRequest struct {
	Title  *string `json:"title"`
	Weight *int    `json:"weight"`
}

// CreateFolderRequest is the body for POST /folders.
type CreateFolderRequest struct {
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Weight     int    `json:"weight"`
}

// UpdateFolderRequest is the body for PUT /folders/{id}.
// category_id may be reassigned but never cleared.
type UpdateFolderRequest struct {
	CategoryID *string `json:"category_id"`
	Title      *string `json:"title"`
	Weight     *int    `json:"weight"`
}

// CreateSubheadingRequest is the body for POST /subheadings.
type CreateSubheadingRequest struct {
	FolderID string `json:"folder_id"`
	Title    string `json:"title"`
	Weight   int    `json:"weight"`
}

// UpdateSubheadingRequest is the body for PUT /subheadings/{id}.
// folder_id may be reassigned but never cleared.
type UpdateSubheadingRequest struct {
	FolderID *string `json:"folder_id"`
	Title    *string `json:"title"`
	Weight   *int    `json:"weight"`
}

// CreateLinkRequest is the body for POST /items. The incoming "link" field
// is stored as url. Both parent references are optional.
type CreateLinkRequest struct {
	FolderID     *string `json:"folder_id"`
	SubheadingID *string `json:"subheading_id"`
	Title        string  `json:"title"`
	Link         string  `json:"link"`
	Weight       int     `json:"weight"`
}

// UpdateLinkRequest is the body for PUT /items/{id}. The parent references
// carry three-state semantics: absent leaves the relation untouched, a value
// reattaches it, and an explicit null detaches it.
type UpdateLinkRequest struct {
	FolderID     patch.Field[string] `json:"folder_id"`
	SubheadingID patch.Field[string] `json:"subheading_id"`
	Title        *string             `json:"title"`
	Link         *string             `json:"link"`
	Weight       *int                `json:"weight"`
}
