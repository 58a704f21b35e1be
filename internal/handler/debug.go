package handler

import (
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// DebugEnv lists the names of environment variables for deployment
// troubleshooting. Only key names are returned, never values.
func DebugEnv(c *gin.Context) {
	keys := make([]string, 0, len(os.Environ()))
	hasDBHost := false
	hasDBPort := false
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		keys = append(keys, key)
		switch key {
		case "DB_HOST":
			hasDBHost = true
		case "DB_PORT":
			hasDBPort = true
		}
	}
	sort.Strings(keys)

	c.JSON(http.StatusOK, gin.H{
		"environment_keys": keys,
		"has_db_host":      hasDBHost,
		"has_db_port":      hasDBPort,
		"current_time":     time.Now().Format(time.RFC3339),
	})
}
