package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/library-id/internal/client"
	"github.com/weiawesome/library-id/internal/domain"
	"github.com/weiawesome/library-id/internal/generator"
	"github.com/weiawesome/library-id/internal/service"
	"github.com/weiawesome/library-id/pkg/log"
	"github.com/weiawesome/library-id/pkg/response"
)

// Handler handles HTTP requests for the identifier service.
type Handler struct {
	ids   service.IdentifierService
	books service.BookService
}

// NewHandler creates a new HTTP handler.
func NewHandler(ids service.IdentifierService, books service.BookService) *Handler {
	return &Handler{ids: ids, books: books}
}

// RegisterRoutes registers all API routes under /api/v1. middleware runs
// before every API handler.
func (h *Handler) RegisterRoutes(r gin.IRouter, middleware ...gin.HandlerFunc) {
	api := r.Group("/api/v1", middleware...)
	{
		ids := api.Group("/ids")
		{
			ids.GET("", h.ListSchemes)
			ids.GET("/:scheme", h.GenerateID)
			ids.POST("/:scheme/batch", h.GenerateBatch)
			ids.POST("/:scheme/validate", h.ValidateID)
			ids.POST("/:scheme/parse", h.ParseID)
		}

		isbn := api.Group("/isbn")
		{
			isbn.GET("", h.GenerateISBN)
			isbn.POST("/format", h.FormatISBN)
			isbn.POST("/convert", h.ConvertISBN)
		}

		books := api.Group("/books")
		{
			books.POST("", h.RegisterBook)
			books.GET("", h.ListBooks)
			books.GET("/:id", h.GetBook)
			books.PUT("/:id", h.UpdateBook)
			books.DELETE("/:id", h.DeleteBook)
		}
	}
}

// ListSchemes lists the identifier schemes.
func (h *Handler) ListSchemes(c *gin.Context) {
	response.Success(c, domain.SchemesResponse{Schemes: h.ids.Schemes(c.Request.Context())})
}

// GenerateID issues one identifier of the scheme in the path.
func (h *Handler) GenerateID(c *gin.Context) {
	var req domain.GenerateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ids.Generate(c.Request.Context(), scheme(c), req.Hyphenate)
	if err != nil {
		h.fail(c, err, "failed to generate identifier")
		return
	}
	response.Success(c, resp)
}

// GenerateBatch issues up to domain.MaxBatchSize identifiers.
func (h *Handler) GenerateBatch(c *gin.Context) {
	var req domain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ids.GenerateBatch(c.Request.Context(), scheme(c), req.Count, req.Hyphenate)
	if err != nil {
		h.fail(c, err, "failed to generate identifiers")
		return
	}
	response.Success(c, resp)
}

// ValidateID checks an identifier. An invalid identifier is a successful
// request with valid=false.
func (h *Handler) ValidateID(c *gin.Context) {
	var req domain.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ids.Validate(c.Request.Context(), scheme(c), req.ID)
	if err != nil {
		h.fail(c, err, "failed to validate identifier")
		return
	}
	response.Success(c, resp)
}

// ParseID decodes an identifier.
func (h *Handler) ParseID(c *gin.Context) {
	var req domain.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ids.Parse(c.Request.Context(), scheme(c), req.ID)
	if err != nil {
		h.fail(c, err, "failed to parse identifier")
		return
	}
	response.Success(c, resp)
}

// GenerateISBN issues an ISBN; ISBN-13 unless type=isbn10.
func (h *Handler) GenerateISBN(c *gin.Context) {
	var req domain.ISBNRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	s := generator.SchemeISBN13
	if req.Type != "" {
		s = generator.Scheme(req.Type)
	}

	resp, err := h.ids.Generate(c.Request.Context(), s, req.Hyphenate)
	if err != nil {
		h.fail(c, err, "failed to generate isbn")
		return
	}
	response.Success(c, resp)
}

// FormatISBN hyphenates an identifier.
func (h *Handler) FormatISBN(c *gin.Context) {
	var req domain.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.ids.Format(c.Request.Context(), req.ID))
}

// ConvertISBN converts between ISBN-10 and ISBN-13.
func (h *Handler) ConvertISBN(c *gin.Context) {
	var req domain.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ids.Convert(c.Request.Context(), req.ID, generator.Scheme(req.To))
	if err != nil {
		h.fail(c, err, "failed to convert isbn")
		return
	}
	response.Success(c, resp)
}

// RegisterBook sends a new book to the catalog, assigning an ISBN if needed.
func (h *Handler) RegisterBook(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.RegisterBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind register book request")
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.books.RegisterBook(ctx, &req)
	if err != nil {
		h.fail(c, err, "failed to register book")
		return
	}
	response.Created(c, resp)
}

// ListBooks lists catalog records with formatted ISBNs.
func (h *Handler) ListBooks(c *gin.Context) {
	resp, err := h.books.ListBooks(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list books")
		return
	}
	response.Success(c, resp)
}

// GetBook returns one catalog record.
func (h *Handler) GetBook(c *gin.Context) {
	resp, err := h.books.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to get book")
		return
	}
	response.Success(c, resp)
}

// UpdateBook replaces a catalog record.
func (h *Handler) UpdateBook(c *gin.Context) {
	var req domain.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.books.UpdateBook(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "failed to update book")
		return
	}
	response.Success(c, resp)
}

// DeleteBook removes a catalog record.
func (h *Handler) DeleteBook(c *gin.Context) {
	id := c.Param("id")
	if err := h.books.DeleteBook(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete book")
		return
	}
	response.Success(c, gin.H{"id": id})
}

func scheme(c *gin.Context) generator.Scheme {
	return generator.Scheme(c.Param("scheme"))
}

// fail maps service errors to responses. Unexpected errors are logged and
// reported with msg only.
func (h *Handler) fail(c *gin.Context, err error, msg string) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, generator.ErrUnknownScheme):
		response.Error(c, http.StatusNotFound, response.CodeUnknownScheme, err.Error())
	case errors.Is(err, service.ErrInvalidISBN):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidISBN, err.Error())
	case errors.Is(err, generator.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidID, err.Error())
	case errors.Is(err, service.ErrInvalidCount), errors.Is(err, service.ErrNotISBN), errors.Is(err, service.ErrInvalidCopies):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrCatalogUnavailable):
		response.ServiceUnavailable(c, err.Error())
	case errors.Is(err, client.ErrBookNotFound):
		response.NotFound(c, client.ErrBookNotFound.Error())
	case errors.As(err, &apiErr):
		status := http.StatusBadGateway
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		l := log.Ctx(c.Request.Context())
		l.Warn().Err(err).Int(log.FieldBackendStatus, apiErr.StatusCode).Msg(msg)
		response.Error(c, status, response.CodeBackendError, apiErr.Message)
	default:
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Msg(msg)
		_ = c.Error(err)
		response.InternalError(c, msg)
	}
}
