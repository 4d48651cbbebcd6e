package app

import (
	"context"
	"strings"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/core/validation"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// DocumentServiceImpl implements the DocumentService interface.
type DocumentServiceImpl struct {
	engine  *Engine[models.Document, *models.Document, secondary.DocumentFilters]
	docRepo secondary.DocumentRepository
	appRepo secondary.ApplicationRepository
}

// NewDocumentService creates a new DocumentService with injected dependencies.
func NewDocumentService(docRepo secondary.DocumentRepository, appRepo secondary.ApplicationRepository, deps EngineDeps) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		engine:  NewEngine[models.Document, *models.Document](models.KindDocument, i18n.EntityDocument, docRepo, deps),
		docRepo: docRepo,
		appRepo: appRepo,
	}
}

// Create validates and registers a new document.
func (s *DocumentServiceImpl) Create(ctx context.Context, doc *models.Document) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if doc == nil {
			return nil, result.NilArgument("document")
		}
		normalizeDocument(doc)
		if res := s.engine.Invalid(ctx, validation.Document(doc)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, doc, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(doc, false, false)...)
		})
	})
}

// Update validates doc against the stored record and saves it.
// Keys are only compared with other documents when the document stays in the same application.
func (s *DocumentServiceImpl) Update(ctx context.Context, doc *models.Document) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if doc == nil {
			return nil, result.NilArgument("document")
		}
		normalizeDocument(doc)
		if res := s.engine.Invalid(ctx, validation.Document(doc)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, doc, func(ctx context.Context, old *models.Document) (*result.Result, error) {
			sameApp := old.ApplicationID == doc.ApplicationID
			return firstFailure(ctx, s.relationalChecks(doc,
				sameApp && sameKey(doc.Name, old.Name),
				sameApp && sameKey(doc.URL, old.URL),
			)...)
		})
	})
}

// Delete removes a document.
func (s *DocumentServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.Delete(ctx, id)
	})
}

// Get retrieves a document by ID; nil when absent.
func (s *DocumentServiceImpl) Get(ctx context.Context, id int64) (*models.Document, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of documents.
func (s *DocumentServiceImpl) List(ctx context.Context, filters secondary.DocumentFilters, page secondary.Page) (*secondary.PagedResult[models.Document], error) {
	return s.engine.List(ctx, filters, page)
}

// relationalChecks orders the probes name, url, then application.
func (s *DocumentServiceImpl) relationalChecks(doc *models.Document, nameUnchanged, urlUnchanged bool) []check {
	return []check{
		s.engine.unique(i18n.FieldName, nameUnchanged, func(ctx context.Context) (bool, error) {
			return s.docRepo.NameExists(ctx, doc.Name, doc.ApplicationID)
		}),
		s.engine.unique(i18n.FieldURL, urlUnchanged, func(ctx context.Context) (bool, error) {
			return s.docRepo.URLExists(ctx, doc.URL, doc.ApplicationID)
		}),
		s.engine.exists(i18n.EntityApplication, func(ctx context.Context) (bool, error) {
			a, err := s.appRepo.GetByID(ctx, doc.ApplicationID)
			return a != nil, err
		}),
	}
}

func normalizeDocument(d *models.Document) {
	d.Name = strings.TrimSpace(d.Name)
	d.URL = strings.TrimSpace(d.URL)
}

// Ensure DocumentServiceImpl implements the interface.
var _ primary.DocumentService = (*DocumentServiceImpl)(nil)
