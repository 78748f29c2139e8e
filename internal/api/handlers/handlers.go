// Package handlers holds helpers shared by the endpoint packages.
package handlers

import (
	"strconv"

	"homechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// RespondError writes err as a JSON error response using the taxonomy's
// status and code. The request is aborted; the process keeps serving.
func RespondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(common.HTTPStatus(err), common.ErrorResponse{
		Code:    common.ErrorCode(err),
		Message: err.Error(),
	})
}

// ParseID reads a numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		RespondError(c, common.ValidationError("invalid "+name))
		return 0, false
	}
	return uint(id), true
}
