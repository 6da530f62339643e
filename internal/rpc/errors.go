package rpc

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/todo-tracker/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/db"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/domain"
)

const (
	TagValidation    = "ValidationError"
	TagInternal      = "InternalError"
	TagUnknownMethod = "UnknownMethodError"

	internalMessage = "An internal error occurred"
)

// ErrorBody is the "error" member of a failed response.
type ErrorBody struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

// fail translates err into a transport error. Internal failures are logged
// and replaced with a generic message.
func (h *Handler) fail(c *gin.Context, method string, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			id := nf.ID
			respondError(c, http.StatusNotFound, ErrorBody{Tag: nf.Tag(), Message: nf.Error(), ID: &id})
			return
		}
		respondError(c, http.StatusNotFound, ErrorBody{Tag: "NotFoundError", Message: err.Error()})

	case domain.KindValidation:
		var ve *domain.ValidationError
		msg := err.Error()
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		respondError(c, http.StatusBadRequest, ErrorBody{Tag: TagValidation, Message: msg})

	default:
		ctx := c.Request.Context()
		h.logger.ErrorContext(ctx, "rpc call failed",
			slog.String("method", method),
			slog.String("request_id", middleware.GetRequestID(ctx)),
			slog.String("db_code", db.ErrorCode(err)),
			slog.Any("error", err),
		)
		respondError(c, http.StatusInternalServerError, ErrorBody{Tag: TagInternal, Message: internalMessage})
	}
}

func respondError(c *gin.Context, status int, body ErrorBody) {
	c.JSON(status, gin.H{"ok": false, "error": body})
}

// payloadError turns a decode or validator failure into a domain
// validation error carrying a readable message.
func payloadError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.Invalid(fe.Field(), fieldMessage(fe))
	}
	return domain.Invalid("payload", "Invalid payload: "+err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		if fe.Param() == "1" {
			return fe.Field() + " must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return fe.Field() + " must be a positive integer"
		}
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}
