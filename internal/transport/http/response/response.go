package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/dto"
)

func Fail(status int, msg string) dto.ReturnModel[any] {
	if msg == "" {
		msg = DefaultMessage(status)
	}
	return dto.Failed[any](status, msg, nil)
}

func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Fail(status, msg))
}

// FromError is the total error-to-HTTP mapping: every error yields
// exactly one status and envelope.
func FromError(err error) (int, dto.ReturnModel[any]) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound, Fail(http.StatusNotFound, err.Error())
	case apperr.KindBusiness:
		return http.StatusBadRequest, Fail(http.StatusBadRequest, err.Error())
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized, Fail(http.StatusUnauthorized, err.Error())
	case apperr.KindValidation:
		rm := dto.Failed[any](http.StatusBadRequest, err.Error(), nil)
		if fields := apperr.FieldsOf(err); len(fields) > 0 {
			rm.Data = fields
		}
		return http.StatusBadRequest, rm
	default:
		return http.StatusInternalServerError, Fail(http.StatusInternalServerError, err.Error())
	}
}
