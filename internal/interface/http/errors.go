package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/pkg/apperrors"
	"github.com/oksasatya/feedback-platform/pkg/response"
	"github.com/oksasatya/feedback-platform/pkg/validation"
)

var errRouteNotFound = apperrors.NewNotFoundError("route not found")

// writeError maps an application error onto its status and the error
// envelope. Internal causes are logged, never returned to the client.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	ae := apperrors.As(err)
	if ae.Type == apperrors.ErrorTypeInternal {
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			}).Error("request failed")
		}
		response.Abort(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Abort(c, ae.HTTPStatus(), ae.Message, nil)
}

func writeBindError(c *gin.Context, err error) {
	response.Abort(c, http.StatusBadRequest, "invalid request", validation.ToDetails(err))
}
