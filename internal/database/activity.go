package database

import (
	"context"
	"fmt"
	"log/slog"

	"dealership/internal/models"

	"gorm.io/gorm"
)

// helper для записи в журнал действий; ошибки только логируются
func CreateActivityLog(db *gorm.DB, log *slog.Logger, userID uint, entity, action, details string) {
	if db == nil {
		return
	}
	record := models.ActivityLog{
		UserID:  userID,
		Entity:  entity,
		Action:  action,
		Details: details,
	}
	if err := db.Create(&record).Error; err != nil {
		log.Warn("failed to write activity log", "entity", entity, "action", action, "error", err)
	}
}

// ActivityLimit — сколько последних записей журнала отдаётся за раз.
const ActivityLimit = 200

// RecentActivity возвращает последние записи журнала вместе с пользователями.
func RecentActivity(ctx context.Context, db *gorm.DB, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > ActivityLimit {
		limit = ActivityLimit
	}

	var logs []models.ActivityLog
	err := db.WithContext(ctx).
		Preload("User").
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return logs, nil
}
