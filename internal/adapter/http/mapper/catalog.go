package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToCategories(categories []domain.Category) []dto.Category {
	items := make([]dto.Category, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.Category{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
	return items
}

func ToPriorities(priorities []domain.Priority) []dto.Priority {
	items := make([]dto.Priority, 0, len(priorities))
	for _, priority := range priorities {
		items = append(items, dto.Priority{ID: priority.ID, Name: priority.Name})
	}
	return items
}

func ToStatuses(statuses []domain.Status) []dto.Status {
	items := make([]dto.Status, 0, len(statuses))
	for _, status := range statuses {
		items = append(items, dto.Status{ID: status.ID, Name: status.Name})
	}
	return items
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, dto.UserItem{ID: user.ID, Username: user.Username})
	}
	return items
}
