package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		CreatedDate:   task.CreatedDate,
		DueDate:       task.DueDate,
		EstimatedTime: task.EstimatedTime,
		PriorityID:    task.PriorityID,
		StatusID:      task.StatusID,
		UserID:        task.UserID,
	}
}

func ToTaskDetail(detail domain.TaskDetail) dto.TaskDetail {
	return dto.TaskDetail{
		ID:            detail.ID,
		Title:         detail.Title,
		Description:   detail.Description,
		CreatedDate:   FormatDateBR(detail.CreatedDate),
		DueDate:       FormatDateBR(detail.DueDate),
		EstimatedTime: detail.EstimatedTime,
		Priority:      detail.PriorityName,
		Status:        detail.StatusName,
		User:          detail.UserName,
	}
}
