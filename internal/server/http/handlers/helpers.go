package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/export"
	"github.com/polkiloo/buyout/internal/server/http/dto"
)

var errInvalidID = errors.New("invalid id")

// pathID parses positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryID parses optional positive integer query parameter.
func queryID(c *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errInvalidID
	}
	return &id, nil
}

// orderFilter reads order filter from query string.
func orderFilter(c *gin.Context) (model.OrderFilter, error) {
	filter := model.OrderFilter{
		Query: strings.TrimSpace(c.Query("query")),
		Sort:  c.Query("sort"),
	}
	var err error
	if filter.CustomerID, err = queryID(c, "customer"); err != nil {
		return filter, err
	}
	if filter.MarketplaceID, err = queryID(c, "marketplace"); err != nil {
		return filter, err
	}
	if filter.PurchaseID, err = queryID(c, "purchase"); err != nil {
		return filter, err
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := model.ParseOrderStatus(raw)
		if !ok {
			return filter, domainErrors.NewValidationError("status", "unknown status")
		}
		filter.Status = &status
	}
	return filter, nil
}

// bindJSON decodes request body. Malformed JSON yields 400, failed binding rules 422.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var bindingErrs validator.ValidationErrors
	if errors.As(err, &bindingErrs) {
		fields := make([]dto.FieldError, 0, len(bindingErrs))
		for _, fe := range bindingErrs {
			fields = append(fields, dto.FieldError{Field: fe.Field(), Reason: fe.Tag()})
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: domainErrors.ErrValidation.Error(), Fields: fields})
		return false
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
	return false
}

// writeError maps domain errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:  domainErrors.ErrValidation.Error(),
			Fields: []dto.FieldError{{Field: validationErr.Field, Reason: validationErr.Reason}},
		})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, errInvalidID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

// writeWorkbook streams xlsx produced by render as attachment.
func writeWorkbook(c *gin.Context, filename string, render func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+filename)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// bindOptionalJSON decodes request body when one was sent.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}
