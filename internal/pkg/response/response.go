package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/scorelib/scoresearch-backend/internal/pkg/errors"
)

// ErrorBody is the wire shape shared by every failure response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Success sends a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response with the given status.
func Error(c *gin.Context, httpStatus int, errText, message string) {
	c.JSON(httpStatus, ErrorBody{
		Error:   errText,
		Message: message,
	})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "Invalid request", message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, errText, message string) {
	Error(c, http.StatusNotFound, errText, message)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, errText, message string) {
	Error(c, http.StatusInternalServerError, errText, message)
}

// HandleError maps an AppError onto the error contract. Unrecognized errors
// surface their text in the error field with a generic message, matching the
// top-level catch-all behavior.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	code := apperrors.ExtractCode(err)
	status := apperrors.GetHTTPStatus(code)

	if code == apperrors.ErrInternalServer {
		Error(c, status, apperrors.GetDetails(err), "Internal server error")
		return
	}

	Error(c, status, apperrors.GetMessage(code), apperrors.GetDetails(err))
}
