package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// List sends a success response for a collection. data is always rendered,
// so an empty gallery is "data": [] rather than a missing key.
func List[T any](c *gin.Context, code int, message string, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	c.JSON(code, struct {
		Response
		Data []T `json:"data"`
	}{
		Response: Response{
			Success:   true,
			Message:   message,
			Count:     &count,
			RequestID: requestID(c),
		},
		Data: items,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}
