package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/ptlog/models"
	"github.com/blogem/ptlog/services"
)

// ProjectController handles project management requests
type ProjectController struct {
	services *services.Services
}

// NewProjectController creates a new project controller
func NewProjectController(services *services.Services) *ProjectController {
	return &ProjectController{
		services: services,
	}
}

// Populate handles GET /populate, the active project names
func (c *ProjectController) Populate(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, false)
}

// List handles GET /projects?archived=true|false
func (c *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	archived := false
	if raw := r.URL.Query().Get("archived"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: archived must be true or false", models.ErrValidation))
			return
		}
		archived = v
	}
	c.list(w, r, archived)
}

func (c *ProjectController) list(w http.ResponseWriter, r *http.Request, archived bool) {
	names, err := c.services.Projects.List(r.Context(), archived)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// Create handles POST /createProject
func (c *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ProjectForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	name, err := c.services.Projects.Create(r.Context(), &form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Inserted project: %s (1 row(s))", name),
		Rows:    1,
	})
}

// Archive handles PUT /projects/{name}/archive
func (c *ProjectController) Archive(w http.ResponseWriter, r *http.Request) {
	name := projectParam(r)
	rows, err := c.services.Projects.Archive(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Archived project: %s (%d row(s))", name, rows),
		Rows:    rows,
	})
}

// Restore handles PUT /projects/{name}/restore
func (c *ProjectController) Restore(w http.ResponseWriter, r *http.Request) {
	name := projectParam(r)
	rows, err := c.services.Projects.Restore(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Restored project: %s (%d row(s))", name, rows),
		Rows:    rows,
	})
}

// Delete handles DELETE /projects/{name}
func (c *ProjectController) Delete(w http.ResponseWriter, r *http.Request) {
	name := projectParam(r)
	logs, err := c.services.Projects.Delete(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Deleted project: %s and %d log(s)", name, logs),
		Rows:    logs,
	})
}

// projectParam returns the unescaped {name} path parameter
func projectParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
