package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/taskgate/internal/models"
	"github.com/adanyl0v/taskgate/internal/remote"
	"github.com/adanyl0v/taskgate/internal/services"
)

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	filter := models.TaskFilter{Limit: services.DefaultListLimit}

	if limit, ok := parseLimit(c.Query("limit")); ok && limit > 0 {
		filter.Limit = limit
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if repoURL := c.Query("repoURL"); repoURL != "" {
		filter.RepoURL = &repoURL
	}
	filter.Ready = c.Query("ready") == "true"

	envelope, err := h.tasks.ListTasks(c.Request.Context(), filter)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	relay(c, http.StatusOK, envelope)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	envelope, err := h.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	relay(c, http.StatusOK, envelope)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	fields, err := bindTaskFields(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	envelope, err := h.tasks.CreateTask(c.Request.Context(), fields)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	relay(c, http.StatusCreated, envelope)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	fields, err := bindTaskFields(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	envelope, err := h.tasks.UpdateTask(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	relay(c, http.StatusOK, envelope)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	envelope, err := h.tasks.DeleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	relay(c, http.StatusOK, envelope)
}

// bindTaskFields decodes the request body. An empty body is an empty
// field set. Field values are not checked, only the body's shape.
func bindTaskFields(c *gin.Context) (models.TaskFields, error) {
	var fields models.TaskFields
	err := c.ShouldBindJSON(&fields)
	if err != nil && !errors.Is(err, io.EOF) {
		return models.TaskFields{}, fmt.Errorf("%w: %v", errInvalidRequestBody, err)
	}
	return fields, nil
}

// parseLimit reads the leading integer of s, so "10abc" is 10. It fails
// when s has no leading digits.
func parseLimit(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	limit, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return limit, true
}

// relay writes the remote response body unchanged.
func relay(c *gin.Context, code int, envelope *remote.Envelope) {
	c.Data(code, gin.MIMEJSON+"; charset=utf-8", envelope.Raw)
}
