package util

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "sp_flash"

// FlashMessage is a one-shot notice rendered on the next page load.
type FlashMessage struct {
	Level   string // success / danger / info
	Message string
}

// Flash queues a message for the next rendered page via a short-lived cookie.
func Flash(c *gin.Context, level, message string) {
	v := url.QueryEscape(level + "|" + message)
	c.SetCookie(flashCookie, v, 300, "/", "", false, true)
}

// PopFlash returns the pending flash message, if any, and clears it.
func PopFlash(c *gin.Context) *FlashMessage {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	level, msg, ok := strings.Cut(decoded, "|")
	if !ok {
		return &FlashMessage{Level: "info", Message: decoded}
	}
	return &FlashMessage{Level: level, Message: msg}
}
