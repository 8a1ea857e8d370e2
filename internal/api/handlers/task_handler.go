package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"task-manager-api/internal/entity"
	"task-manager-api/internal/usecase"
)

var (
	errNoBody  = errors.New("no JSON data provided")
	errBadJSON = errors.New("invalid JSON")
)

type TaskHandler struct {
	taskService *usecase.TaskService
	log         *log.Logger
}

func NewTaskHandler(taskService *usecase.TaskService, logger *log.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         logger,
	}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {

	var req entity.CreateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, bodyErrorMessage(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidTitle):
			writeError(w, http.StatusBadRequest, "Task title must be a non-empty string")
		case errors.Is(err, entity.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "Status must be pending or done")
		case errors.Is(err, entity.ErrTaskReadBack):
			writeError(w, http.StatusInternalServerError, "Could not fetch new task")
		default:
			h.storeError(w, err)
		}
		return
	}

	writeJson(w, http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskId, err := parseTaskId(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskId)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, "Task not found")
		default:
			h.storeError(w, err)
		}
		return
	}

	writeJson(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskId, err := parseTaskId(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req entity.UpdateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, bodyErrorMessage(err))
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskId, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNoFieldsToUpdate):
			writeError(w, http.StatusBadRequest, "Nothing to update")
		case errors.Is(err, entity.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, entity.ErrTaskReadBack):
			writeError(w, http.StatusInternalServerError, "Could not fetch updated task")
		default:
			h.storeError(w, err)
		}
		return
	}

	writeJson(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskId, err := parseTaskId(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskId); err != nil {
		switch {
		case errors.Is(err, entity.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, "Task not found")
		default:
			h.storeError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}

	writeJson(w, http.StatusOK, tasks)
}

// storeError reports an unexpected repository failure with its message
// so callers can see what the store complained about.
func (h *TaskHandler) storeError(w http.ResponseWriter, err error) {
	h.log.WithError(err).Error("store operation failed")
	writeError(w, http.StatusInternalServerError, "DB issue: "+err.Error())
}

func parseTaskId(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeBody reads a JSON body into dst, distinguishing an absent or null
// body from malformed JSON.
func decodeBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errBadJSON
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errNoBody
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		return errBadJSON
	}

	return nil
}

func bodyErrorMessage(err error) string {
	if errors.Is(err, errNoBody) {
		return "No JSON data provided"
	}
	return "Invalid JSON"
}
