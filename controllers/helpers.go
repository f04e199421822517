package controllers

import (
	"strconv"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// fail turns a service error into the envelope, using the error kind for the
// status code.
func fail(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
}

func paramUint(c *gin.Context, name string) uint {
	n, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(n)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return n
}
