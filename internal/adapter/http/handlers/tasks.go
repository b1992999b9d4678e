package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns every task, optionally narrowed by a ?status=<id> or
// ?user=<id> query parameter.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var filter domain.TaskFilter
	if raw, ok := c.GetQuery("status"); ok {
		statusID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatusFilter, lang),
			)
			return
		}
		filter.StatusID = &statusID
	} else if raw, ok := c.GetQuery("user"); ok {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserFilter, lang),
			)
			return
		}
		filter.UserID = &userID
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	detail, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskDetail(detail))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	id, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		Title:         *req.Title,
		Description:   *req.Description,
		CreatedDate:   *req.CreatedDate,
		DueDate:       *req.DueDate,
		EstimatedTime: *req.EstimatedTime,
		PriorityID:    *req.PriorityID,
		StatusID:      *req.StatusID,
		UserID:        *req.UserID,
	})
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: translator.Localize(msgTaskCreated, lang),
	})
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgStatusRequired, lang),
		)
		return
	}

	if err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, *req.StatusID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task status", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateStatus, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.StatusUpdatedResponse{
		ID:       taskID,
		StatusID: *req.StatusID,
		Message:  translator.Localize(msgStatusUpdated, lang),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Localize(msgTaskDeleted, lang),
	})
}

func (h *TaskHandler) ListTaskCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	categories, err := h.taskService.ListTaskCategories(c.Request.Context(), taskID)
	if err != nil {
		zap.L().Error("failed to list task categories", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTaskCategories, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategories(categories))
}

func (h *TaskHandler) CreateTaskCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskCategoryPayload, lang),
		)
		return
	}

	if err := h.taskService.AttachCategory(c.Request.Context(), req.TaskID, req.CategoryID); err != nil {
		zap.L().Error("failed to create task-category link",
			zap.Int64("task_id", req.TaskID), zap.Int64("category_id", req.CategoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTaskCategory, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: translator.Localize(msgTaskCategoryCreated, lang),
	})
}

func parseTaskID(c *gin.Context, lang string) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || taskID <= 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}
