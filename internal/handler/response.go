package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cattery/internal/aifill"
	"cattery/internal/domain"
	"cattery/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain and AI pipeline errors to HTTP status
// codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	if status, code, msg, ok := mapAIError(err); ok {
		return status, code, msg
	}

	switch {
	case errors.Is(err, domain.ErrCatNotFound):
		return http.StatusNotFound, "CAT_NOT_FOUND", "cat not found"
	case errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, "DRAFT_NOT_FOUND", "draft not found or already closed"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: jpg, png, webp"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidUploadType):
		return http.StatusBadRequest, "INVALID_UPLOAD_TYPE", "invalid upload_type; allowed: cat_image, store_image"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrInvalidCat),
		errors.Is(err, domain.ErrInvalidBirthday),
		errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, "INVALID_CAT", err.Error()
	case errors.Is(err, domain.ErrUnknownBreed):
		return http.StatusBadRequest, "UNKNOWN_BREED", "breed is not a configured value"
	case errors.Is(err, domain.ErrUnknownStore):
		return http.StatusBadRequest, "UNKNOWN_STORE", "store is not a configured store"
	case errors.Is(err, domain.ErrUnknownStatus):
		return http.StatusBadRequest, "UNKNOWN_STATUS", "catcafe status is not a configured value"
	case errors.Is(err, domain.ErrEmptyBulkSelection):
		return http.StatusBadRequest, "EMPTY_SELECTION", "at least one id is required"
	case errors.Is(err, domain.ErrDuplicateBreed):
		return http.StatusConflict, "DUPLICATE_BREED", "breed value already exists"
	case errors.Is(err, domain.ErrDuplicateStatus):
		return http.StatusConflict, "DUPLICATE_STATUS", "status value already exists"
	case errors.Is(err, domain.ErrDuplicateStore):
		return http.StatusConflict, "DUPLICATE_STORE", "store name already exists"
	case errors.Is(err, domain.ErrInvalidStoreType):
		return http.StatusBadRequest, "INVALID_STORE_TYPE", "invalid store type; allowed: main, branch"
	case errors.Is(err, domain.ErrInvalidConfigValue):
		return http.StatusBadRequest, "INVALID_CONFIG_VALUE", err.Error()
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrFillInProgress):
		return http.StatusConflict, "FILL_IN_PROGRESS", "an AI fill is already running for this draft"
	case errors.Is(err, domain.ErrEmptyFillText):
		return http.StatusBadRequest, "EMPTY_FILL_TEXT", "text is required for AI fill"
	case errors.Is(err, domain.ErrUnsupportedFormType):
		return http.StatusBadRequest, "UNSUPPORTED_FORM_TYPE", "unsupported form type; allowed: cat"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

func mapAIError(err error) (status int, code, msg string, ok bool) {
	var cfgErr *aifill.ConfigurationError
	if errors.As(err, &cfgErr) {
		return http.StatusServiceUnavailable, "AI_NOT_CONFIGURED", cfgErr.Message, true
	}
	var provErr *aifill.ProviderError
	if errors.As(err, &provErr) {
		if provErr.Timeout {
			return http.StatusGatewayTimeout, "AI_TIMEOUT", "AI provider timed out, please retry", true
		}
		return http.StatusBadGateway, "AI_PROVIDER_ERROR", "extraction failed, please retry", true
	}
	var malErr *aifill.MalformedOutputError
	if errors.As(err, &malErr) {
		return http.StatusBadGateway, "AI_MALFORMED_OUTPUT", "AI returned malformed JSON, please retry", true
	}
	return 0, "", "", false
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.ContextKeyRequestID)
		log.Printf("[%s] %s: %v", requestID, code, err)
		_ = c.Error(err)
	}
	RespondError(c, status, code, msg)
}

// parseID parses the :id path parameter. Returns false if it is not a UUID
// (error response already written).
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads offset and limit query parameters with the same
// defaults and ceiling for every list endpoint.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// BulkDeleteRequest is the body of bulk delete endpoints.
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}

// BulkDeleteResponse reports how many rows a bulk delete removed.
type BulkDeleteResponse struct {
	Deleted int `json:"deleted" example:"3"`
}
