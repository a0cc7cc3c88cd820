// Package resp is the single response envelope: {data} for payloads,
// {data, meta} for lists, {code, title, message} for errors.
package resp

import (
	"net/http"

	"github.com/quark1412/FoodyRush-sub000/pkg/listing"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

func List(c *gin.Context, data any, meta listing.Meta) {
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": meta})
}

func Error(c *gin.Context, code int, title, message string) {
	c.JSON(code, gin.H{"code": code, "title": title, "message": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "Bad Request", message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, "Unauthorized", message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, "Forbidden", message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "Not Found", message)
}

func ServerError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}
