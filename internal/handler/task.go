package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/taskdeck/internal/domain"
	"github.com/msomdec/taskdeck/internal/service"
)

// TaskHandler handles task CRUD HTTP requests. Every route is registered
// behind RequireAuth, and the owner id used in each call comes from the
// verified token claims, never from the request body.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// HandleList returns the requester's tasks.
// GET /tasks
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	tasks, err := h.tasks.List(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("list tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTOs(tasks))
}

// HandleGet returns one of the requester's tasks.
// GET /tasks/{id}
func (h *TaskHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	taskID, ok := pathID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.Get(r.Context(), claims.UserID, taskID)
	if err != nil {
		h.writeTaskError(w, "get task", err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

// HandleCreate creates a task owned by the requester.
// POST /tasks
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req taskRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	task, err := h.tasks.Create(r.Context(), claims.UserID, req.Title, req.Description, req.Done)
	if err != nil {
		h.writeTaskError(w, "create task", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskDTO(task))
}

// HandleUpdate replaces a task's title, description, and done flag.
// PUT /tasks/{id}
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	taskID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	patch := domain.TaskPatch{Title: req.Title, Description: req.Description, Done: req.Done}
	task, err := h.tasks.Update(r.Context(), claims.UserID, taskID, patch)
	if err != nil {
		h.writeTaskError(w, "update task", err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

// HandleDelete removes one of the requester's tasks.
// DELETE /tasks/{id}
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	taskID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.Remove(r.Context(), claims.UserID, taskID); err != nil {
		h.writeTaskError(w, "delete task", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeTaskError maps domain errors to status codes. Missing and
// not-owned tasks are both 404 so existence cannot be probed.
func (h *TaskHandler) writeTaskError(w http.ResponseWriter, op string, err error) {
	var conflict *domain.ConflictError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Task not found.")
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, "Unique constraint violation on "+conflict.FieldList()+".")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id.")
		return 0, false
	}
	return id, true
}
