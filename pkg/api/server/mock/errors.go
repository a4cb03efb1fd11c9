package mock

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/server/mock/backend"
)

// ErrorResponse is the body the broker sends with every error status.
type ErrorResponse struct {
	Reason string `json:"reason"`
}

func handleError(c *gin.Context, err error) {
	backendErr, ok := err.(*backend.Error)
	if !ok {
		glog.Errorf("encountered error: %v", err.Error())
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Reason: "internal error"})
		return
	}

	statusCode := http.StatusInternalServerError
	switch backendErr.Code() {
	case backend.ErrorCodeNotFound:
		statusCode = http.StatusNotFound
	case backend.ErrorCodeAlreadyExists, backend.ErrorCodeNotEmpty:
		statusCode = http.StatusConflict
	case backend.ErrorCodeInvalid:
		statusCode = http.StatusNotAcceptable
	}

	c.JSON(statusCode, &ErrorResponse{Reason: backendErr.Reason})
}

func handleBadRequestBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, &ErrorResponse{Reason: "invalid request body"})
}
