package directory

import (
	"time"

	"github.com/dalemusser/stratalinks/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pure record→DTO transforms. Creation times become RFC 3339 UTC strings;
// ObjectIDs become hex strings.

func toCategoryDTO(m models.Category) Category {
	return Category{
		CategoryID: m.ID.Hex(),
		Title:      m.Title,
		Weight:     m.Weight,
		Timestamp:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toFolderDTO(m models.Folder) Folder {
	return Folder{
		FolderID:   m.ID.Hex(),
		CategoryID: m.CategoryID.Hex(),
		Title:      m.Title,
		Weight:     m.Weight,
		Timestamp:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toSubheadingDTO(m models.Subheading) Subheading {
	return Subheading{
		SubheadingID: m.ID.Hex(),
		FolderID:     m.FolderID.Hex(),
		Title:        m.Title,
		Weight:       m.Weight,
		Timestamp:    m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toLinkDTO(m models.Link) Link {
	return Link{
		LinkID:       m.ID.Hex(),
		FolderID:     hexPtr(m.FolderID),
		SubheadingID: hexPtr(m.SubheadingID),
		Title:        m.Title,
		Link:         m.URL,
		Weight:       m.Weight,
		Timestamp:    m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toCategoryDTOs(ms []models.Category) []Category {
	out := make([]Category, len(ms))
	for i, m := range ms {
		out[i] = toCategoryDTO(m)
	}
	return out
}

func toFolderDTOs(ms []models.Folder) []Folder {
	out := make([]Folder, len(ms))
	for i, m := range ms {
		out[i] = toFolderDTO(m)
	}
	return out
}

func toSubheadingDTOs(ms []models.Subheading) []Subheading {
	out := make([]Subheading, len(ms))
	for i, m := range ms {
		out[i] = toSubheadingDTO(m)
	}
	return out
}

func toLinkDTOs(ms []models.Link) []Link {
	out := make([]Link, len(ms))
	for i, m := range ms {
		out[i] = toLinkDTO(m)
	}
	return out
}

func hexPtr(id *primitive.ObjectID) *string {
	if id == nil {
		return nil
	}
	s := id.Hex()
	return &s
}
