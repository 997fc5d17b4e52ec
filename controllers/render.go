package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yeremiapane/cafe-finder/utils"
)

var errBadID = errors.New("invalid id")

// render serves an HTML page or, when the client prefers it, the same data as
// JSON. Pending flash notices are attached as "messages".
func render(c *gin.Context, flash *utils.FlashStore, code int, page string, data gin.H) {
	data["messages"] = flash.Pop(c)
	c.Negotiate(code, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: page,
		Data:     data,
	})
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, errBadID
	}
	return uint(id), nil
}

func respondNotFound(c *gin.Context, err error) {
	utils.RespondError(c, http.StatusNotFound, err)
}
