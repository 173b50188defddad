package v1

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const indexDocument = "index.html"

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".md":   "text/markdown; charset=utf-8",
}

func contentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "text/plain; charset=utf-8"
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	if isAPIPath(c.Request.URL.Path) {
		abort(c, newAPIError(http.StatusNotFound, errNotFound.Error()))
		return
	}
	h.serveStatic(c)
}

func (h *handlerImpl) HandleNoMethod(c *gin.Context) {
	abort(c, newAPIError(http.StatusMethodNotAllowed, errMethodNotAllowed.Error()))
}

// serveStatic resolves the request path under staticRoot. The path is
// cleaned as an absolute URL path first, so it cannot climb out of the root.
func (h *handlerImpl) serveStatic(c *gin.Context) {
	urlPath := path.Clean("/" + c.Request.URL.Path)
	if urlPath == "/" {
		urlPath = "/" + indexDocument
	}
	filePath := filepath.Join(h.staticRoot, filepath.FromSlash(urlPath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Debug().
				Str("path", urlPath).
				Msg("static file not found")
			c.String(http.StatusNotFound, "Not Found")
			return
		}

		h.logger.Error().
			Err(err).
			Str("path", urlPath).
			Msg("failed to read static file")
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.Data(http.StatusOK, contentType(filePath), data)
}
