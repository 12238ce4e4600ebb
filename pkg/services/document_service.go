package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/document"
)

// DocumentService is thin CRUD over the document table. Full text is stored
// as a single blob per document — no chunking, no compression.
type DocumentService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewDocumentService creates a document service
func NewDocumentService(client *ent.Client) *DocumentService {
	return &DocumentService{
		client: client,
		log:    slog.Default().With("service", "documents"),
	}
}

// Create stores a document and returns its minted id.
func (s *DocumentService) Create(ctx context.Context, title, author, role, content string) (*ent.Document, error) {
	doc, err := s.client.Document.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetAuthor(author).
		SetRole(document.Role(role)).
		SetContent(content).
		SetCharCount(len(content)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	s.log.Info("Document stored", "document_id", doc.ID, "title", title, "chars", len(content))
	return doc, nil
}

// Get returns nil (not an error) for a missing document. The phase runner
// substitutes a placeholder so the pipeline degrades rather than aborts.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*ent.Document, error) {
	doc, err := s.client.Document.Get(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// List returns documents newest-first, optionally filtered by role.
func (s *DocumentService) List(ctx context.Context, role string, limit, offset int) ([]*ent.Document, int, error) {
	query := s.client.Document.Query()
	if role != "" {
		query = query.Where(document.RoleEQ(document.Role(role)))
	}
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}
	if limit <= 0 {
		limit = 50
	}
	docs, err := query.
		Order(ent.Desc(document.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, total, nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	err := s.client.Document.DeleteOneID(documentID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: document %s", ErrNotFound, documentID)
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
