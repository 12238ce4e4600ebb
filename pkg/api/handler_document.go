package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateDocumentRequest uploads one full text.
type CreateDocumentRequest struct {
	Title   string `json:"title" binding:"required"`
	Author  string `json:"author,omitempty"`
	Role    string `json:"role,omitempty"` // "target" or "prior_work"
	Content string `json:"content" binding:"required"`
}

// CreateDocument handles POST /api/v1/documents.
func (s *Server) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	switch req.Role {
	case "":
		req.Role = "prior_work"
	case "target", "prior_work":
	default:
		detail(c, http.StatusBadRequest, "role must be \"target\" or \"prior_work\"")
		return
	}

	doc, err := s.documents.Create(c.Request.Context(), req.Title, req.Author, req.Role, req.Content)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"document_id": doc.ID,
		"title":       doc.Title,
		"role":        doc.Role,
		"char_count":  doc.CharCount,
	})
}

// ListDocuments handles GET /api/v1/documents.
func (s *Server) ListDocuments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	docs, total, err := s.documents.List(c.Request.Context(), c.Query("role"), limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	items := make([]gin.H, len(docs))
	for i, doc := range docs {
		items[i] = gin.H{
			"document_id": doc.ID,
			"title":       doc.Title,
			"author":      doc.Author,
			"role":        doc.Role,
			"char_count":  doc.CharCount,
			"created_at":  doc.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"documents": items, "total": total})
}

// GetDocument handles GET /api/v1/documents/:id.
func (s *Server) GetDocument(c *gin.Context) {
	doc, err := s.documents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if doc == nil {
		detail(c, http.StatusNotFound, "document not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"document_id": doc.ID,
		"title":       doc.Title,
		"author":      doc.Author,
		"role":        doc.Role,
		"content":     doc.Content,
		"char_count":  doc.CharCount,
		"created_at":  doc.CreatedAt,
	})
}

// DeleteDocument handles DELETE /api/v1/documents/:id.
func (s *Server) DeleteDocument(c *gin.Context) {
	if err := s.documents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
