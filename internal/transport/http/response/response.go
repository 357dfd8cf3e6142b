package response

import "github.com/gin-gonic/gin"

// ErrorBody is the uniform error envelope; every failure carries a
// human-readable detail message.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func Error(c *gin.Context, httpStatus int, detail string) {
	c.JSON(httpStatus, ErrorBody{Detail: detail})
}
