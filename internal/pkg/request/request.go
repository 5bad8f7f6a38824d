package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dessertbook/internal/pkg/response"
)

// PathID parses a positive integer route parameter. On failure it writes a 400
// reply and returns false.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := ParseID(c.Param(name))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}

func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
