package directory

import (
	"context"
	"errors"
	"fmt"

	categorystore "github.com/dalemusser/stratalinks/internal/app/store/category"
	folderstore "github.com/dalemusser/stratalinks/internal/app/store/folder"
	linkstore "github.com/dalemusser/stratalinks/internal/app/store/link"
	subheadingstore "github.com/dalemusser/stratalinks/internal/app/store/subheading"
	"github.com/dalemusser/stratalinks/internal/app/system/patch"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service composes the four entity stores into the directory's read and
// write operations. All list results are ordered by weight descending.
//
// Deletes are restrictive: removing a category with folders, a folder with
// subheadings or links, or a subheading with links fails with a
// ConflictError rather than cascading.
type Service struct {
	categories  *categorystore.Store
	folders     *folderstore.Store
	subheadings *subheadingstore.Store
	links       *linkstore.Store
}

// NewService creates a directory service over the given database.
func NewService(db *mongo.Database) *Service {
	return &Service{
		categories:  categorystore.New(db),
		folders:     folderstore.New(db),
		subheadings: subheadingstore.New(db),
		links:       linkstore.New(db),
	}
}

// parseID converts a path ID to an ObjectID. A malformed ID cannot match
// any record, so it is reported as not-found rather than a client error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

// parseParentID converts a relation ID supplied in a request body.
// Malformed values are the caller's mistake and surface as validation errors.
func parseParentID(field, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &ValidationError{Msg: field + " is not a valid id"}
	}
	return oid, nil
}

// storeErr translates driver-level not-found into the service's signal.
func storeErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// requireCategory returns a validation error unless the category exists.
func (s *Service) requireCategory(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return &ValidationError{Msg: "category_id does not reference an existing category"}
	}
	return nil
}

// requireFolder returns a validation error unless the folder exists.
func (s *Service) requireFolder(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.folders.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check folder: %w", err)
	}
	if !ok {
		return &ValidationError{Msg: "folder_id does not reference an existing folder"}
	}
	return nil
}

// requireSubheading returns a validation error unless the subheading exists.
func (s *Service) requireSubheading(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.subheadings.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check subheading: %w", err)
	}
	if !ok {
		return &ValidationError{Msg: "subheading_id does not reference an existing subheading"}
	}
	return nil
}

/* ------------------------------- Composites ------------------------------ */

// Homepage returns the top-level directory view: all categories and folders
// by weight descending, plus the general links attached to no folder.
func (s *Service) Homepage(ctx context.Context) (*HomepageData, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	folders, err := s.folders.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	general, err := s.links.ListGeneral(ctx)
	if err != nil {
		return nil, fmt.Errorf("list general links: %w", err)
	}

	return &HomepageData{
		Categories:   toCategoryDTOs(cats),
		Folders:      toFolderDTOs(folders),
		GeneralLinks: toLinkDTOs(general),
	}, nil
}

// FolderDetail returns one folder with its subheadings (each carrying its
// nested links) and its direct links. Returns ErrNotFound if the folder
// does not exist.
func (s *Service) FolderDetail(ctx context.Context, folderID string) (*FolderDetailData, error) {
	oid, err := parseID(folderID)
	if err != nil {
		return nil, err
	}

	f, err := s.folders.GetByID(ctx, oid)
	if err != nil {
		return nil, storeErr(err)
	}

	subs, err := s.subheadings.ListByFolder(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("list subheadings: %w", err)
	}

	nested := make([]SubheadingWithLinks, len(subs))
	for i, sub := range subs {
		links, err := s.links.ListBySubheading(ctx, sub.ID)
		if err != nil {
			return nil, fmt.Errorf("list subheading links: %w", err)
		}
		nested[i] = SubheadingWithLinks{
			Subheading: toSubheadingDTO(sub),
			Links:      toLinkDTOs(links),
		}
	}

	direct, err := s.links.ListDirect(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("list direct links: %w", err)
	}

	return &FolderDetailData{
		Folder:      toFolderDTO(*f),
		Subheadings: nested,
		DirectLinks: toLinkDTOs(direct),
	}, nil
}

/* ------------------------------- Categories ------------------------------ */

// ListCategories returns all categories by weight descending.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryDTOs(cats), nil
}

// GetCategory returns one category or ErrNotFound.
func (s *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	cat, err := s.categories.GetByID(ctx, oid)
	if err != nil {
		return nil, storeErr(err)
	}
	dto := toCategoryDTO(*cat)
	return &dto, nil
}

// CreateCategory validates and persists a new category.
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	if req.Title == "" {
		return nil, &ValidationError{Msg: "title is required"}
	}

	cat, err := s.categories.Create(ctx, categorystore.CreateInput{
		Title:  req.Title,
		Weight: req.Weight,
	})
	if err != nil {
		return nil, err
	}
	dto := toCategoryDTO(*cat)
	return &dto, nil
}

// UpdateCategory applies the supplied fields and returns the updated record.
func (s *Service) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*Category, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	err = s.categories.Update(ctx, oid, categorystore.UpdateInput{
		Title:  req.Title,
		Weight: req.Weight,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return s.GetCategory(ctx, id)
}

// DeleteCategory removes a category. Fails with a ConflictError if the
// category still has folders.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	n, err := s.folders.CountByCategory(ctx, oid)
	if err != nil {
		return fmt.Errorf("count folders: %w", err)
	}
	if n > 0 {
		return &ConflictError{Msg: "category still has folders"}
	}

	return storeErr(s.categories.Delete(ctx, oid))
}

/* -------------------------------- Folders -------------------------------- */

// ListFolders returns folders by weight descending. A non-empty categoryID
// restricts the result to that category.
func (s *Service) ListFolders(ctx context.Context, categoryID string) ([]Folder, error) {
	var filter *primitive.ObjectID
	if categoryID != "" {
		oid, err := parseParentID("category_id", categoryID)
		if err != nil {
			return nil, err
		}
		filter = &oid
	}

	folders, err := s.folders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toFolderDTOs(folders), nil
}

// GetFolder returns one folder or ErrNotFound.
func (s *Service) GetFolder(ctx context.Context, id string) (*Folder, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f, err := s.folders.GetByID(ctx, oid)
	if err != nil {
		return nil, storeErr(err)
	}
	dto := toFolderDTO(*f)
	return &dto, nil
}

// CreateFolder validates and persists a new folder. category_id is required
// and must reference an existing category.
func (s *Service) CreateFolder(ctx context.Context, req CreateFolderRequest) (*Folder, error) {
	if req.Title == "" {
		return nil, &ValidationError{Msg: "title is required"}
	}
	if req.CategoryID == "" {
		return nil, &ValidationError{Msg: "category_id is required"}
	}
	catID, err := parseParentID("category_id", req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, catID); err != nil {
		return nil, err
	}

	f, err := s.folders.Create(ctx, folderstore.CreateInput{
		CategoryID: catID,
		Title:      req.Title,
		Weight:     req.Weight,
	})
	if err != nil {
		return nil, err
	}
	dto := toFolderDTO(*f)
	return &dto, nil
}

// UpdateFolder applies the supplied fields. category_id may be reassigned
// to another existing category but never cleared.
func (s *Service) UpdateFolder(ctx context.Context, id string, req UpdateFolderRequest) (*Folder, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	input := folderstore.UpdateInput{
		Title:  req.Title,
		Weight: req.Weight,
	}
	if req.CategoryID != nil {
		catID, err := parseParentID("category_id", *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if err := s.requireCategory(ctx, catID); err != nil {
			return nil, err
		}
		input.CategoryID = &catID
	}

	if err := s.folders.Update(ctx, oid, input); err != nil {
		return nil, storeErr(err)
	}
	return s.GetFolder(ctx, id)
}

// DeleteFolder removes a folder. Fails with a ConflictError if the folder
// still has subheadings or links.
func (s *Service) DeleteFolder(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	subs, err := s.subheadings.CountByFolder(ctx, oid)
	if err != nil {
		return fmt.Errorf("count subheadings: %w", err)
	}
	links, err := s.links.CountByFolder(ctx, oid)
	if err != nil {
		return fmt.Errorf("count links: %w", err)
	}
	if subs > 0 || links > 0 {
		return &ConflictError{Msg: "folder still has subheadings or links"}
	}

	return storeErr(s.folders.Delete(ctx, oid))
}

/* ------------------------------ Subheadings ------------------------------ */

// ListSubheadings returns all subheadings by weight descending.
func (s *Service) ListSubheadings(ctx context.Context) ([]Subheading, error) {
	subs, err := s.subheadings.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSubheadingDTOs(subs), nil
}

// GetSubheading returns one subheading or ErrNotFound.
func (s *Service) GetSubheading(ctx context.Context, id string) (*Subheading, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	sub, err := s.subheadings.GetByID(ctx, oid)
	if err != nil {
		return nil, storeErr(err)
	}
	dto := toSubheadingDTO(*sub)
	return &dto, nil
}

// CreateSubheading validates and persists a new subheading. folder_id is
// required and must reference an existing folder.
func (s *Service) CreateSubheading(ctx context.Context, req CreateSubheadingRequest) (*Subheading, error) {
	if req.Title == "" {
		return nil, &ValidationError{Msg: "title is required"}
	}
	if req.FolderID == "" {
		return nil, &ValidationError{Msg: "folder_id is required"}
	}
	folderID, err := parseParentID("folder_id", req.FolderID)
	if err != nil {
		return nil, err
	}
	if err := s.requireFolder(ctx, folderID); err != nil {
		return nil, err
	}

	sub, err := s.subheadings.Create(ctx, subheadingstore.CreateInput{
		FolderID: folderID,
		Title:    req.Title,
		Weight:   req.Weight,
	})
	if err != nil {
		return nil, err
	}
	dto := toSubheadingDTO(*sub)
	return &dto, nil
}

// UpdateSubheading applies the supplied fields. folder_id may be reassigned
// to another existing folder but never cleared.
func (s *Service) UpdateSubheading(ctx context.Context, id string, req UpdateSubheadingRequest) (*Subheading, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	input := subheadingstore.UpdateInput{
		Title:  req.Title,
		Weight: req.Weight,
	}
	if req.FolderID != nil {
		folderID, err := parseParentID("folder_id", *req.FolderID)
		if err != nil {
			return nil, err
		}
		if err := s.requireFolder(ctx, folderID); err != nil {
			return nil, err
		}
		input.FolderID = &folderID
	}

	if err := s.subheadings.Update(ctx, oid, input); err != nil {
		return nil, storeErr(err)
	}
	return s.GetSubheading(ctx, id)
}

// DeleteSubheading removes a subheading. Fails with a ConflictError if the
// subheading still has links.
func (s *Service) DeleteSubheading(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	n, err := s.links.CountBySubheading(ctx, oid)
	if err != nil {
		return fmt.Errorf("count links: %w", err)
	}
	if n > 0 {
		return &ConflictError{Msg: "subheading still has links"}
	}

	return storeErr(s.subheadings.Delete(ctx, oid))
}

/* --------------------------------- Links --------------------------------- */

// ListLinks returns links by weight descending. A non-empty folderID
// restricts the result to that folder.
func (s *Service) ListLinks(ctx context.Context, folderID string) ([]Link, error) {
	if folderID != "" {
		oid, err := parseParentID("folder_id", folderID)
		if err != nil {
			return nil, err
		}
		links, err := s.links.ListByFolder(ctx, oid)
		if err != nil {
			return nil, err
		}
		return toLinkDTOs(links), nil
	}

	links, err := s.links.List(ctx)
	if err != nil {
		return nil, err
	}
	return toLinkDTOs(links), nil
}

// GetLink returns one link or ErrNotFound.
func (s *Service) GetLink(ctx context.Context, id string) (*Link, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	l, err := s.links.GetByID(ctx, oid)
	if err != nil {
		return nil, storeErr(err)
	}
	dto := toLinkDTO(*l)
	return &dto, nil
}

// CreateLink validates and persists a new link. The incoming "link" field
// is stored as url. Parent references are optional but must exist when
// supplied.
func (s *Service) CreateLink(ctx context.Context, req CreateLinkRequest) (*Link, error) {
	if req.Title == "" {
		return nil, &ValidationError{Msg: "title is required"}
	}
	if req.Link == "" {
		return nil, &ValidationError{Msg: "link is required"}
	}

	input := linkstore.CreateInput{
		Title:  req.Title,
		URL:    req.Link,
		Weight: req.Weight,
	}
	if req.FolderID != nil {
		folderID, err := parseParentID("folder_id", *req.FolderID)
		if err != nil {
			return nil, err
		}
		if err := s.requireFolder(ctx, folderID); err != nil {
			return nil, err
		}
		input.FolderID = &folderID
	}
	if req.SubheadingID != nil {
		subID, err := parseParentID("subheading_id", *req.SubheadingID)
		if err != nil {
			return nil, err
		}
		if err := s.requireSubheading(ctx, subID); err != nil {
			return nil, err
		}
		input.SubheadingID = &subID
	}

	l, err := s.links.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	dto := toLinkDTO(*l)
	return &dto, nil
}

// UpdateLink applies the supplied fields. folder_id and subheading_id carry
// three-state semantics: absent leaves the relation untouched, a value
// reattaches it (the target must exist), and an explicit null detaches it
// without deleting the link.
func (s *Service) UpdateLink(ctx context.Context, id string, req UpdateLinkRequest) (*Link, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	input := linkstore.UpdateInput{
		Title:  req.Title,
		URL:    req.Link,
		Weight: req.Weight,
	}
	switch {
	case req.FolderID.IsSet():
		folderID, err := parseParentID("folder_id", req.FolderID.Value)
		if err != nil {
			return nil, err
		}
		if err := s.requireFolder(ctx, folderID); err != nil {
			return nil, err
		}
		input.FolderID = patch.Set(folderID)
	case req.FolderID.IsClear():
		input.FolderID = patch.Clear[primitive.ObjectID]()
	}
	switch {
	case req.SubheadingID.IsSet():
		subID, err := parseParentID("subheading_id", req.SubheadingID.Value)
		if err != nil {
			return nil, err
		}
		if err := s.requireSubheading(ctx, subID); err != nil {
			return nil, err
		}
		input.SubheadingID = patch.Set(subID)
	case req.SubheadingID.IsClear():
		input.SubheadingID = patch.Clear[primitive.ObjectID]()
	}

	if err := s.links.Update(ctx, oid, input); err != nil {
		return nil, storeErr(err)
	}
	return s.GetLink(ctx, id)
}

// DeleteLink removes a link. Links have no dependents, so no conflict
// checks apply.
func (s *Service) DeleteLink(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return storeErr(s.links.Delete(ctx, oid))
}
