package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// CreateAlertLog stores an alert log together with its condition snapshot.
func (s *Storage) CreateAlertLog(ctx context.Context, a types.AlertLog) (types.AlertLog, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.DeviceID == "" || a.UserID == "" {
		return types.AlertLog{}, fmt.Errorf("%w: alert log requires device and user", ErrStoreFailed)
	}

	m := fromAlertLog(a)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return types.AlertLog{}, translate(err)
	}

	return m.toAlertLog(), nil
}

func (s *Storage) GetAlertLog(ctx context.Context, fns ...QueryFunc) (types.AlertLog, error) {
	q := newQuery(fns...)

	var m alertLog
	if err := q.where(s.db.WithContext(ctx)).First(&m).Error; err != nil {
		return types.AlertLog{}, translate(err)
	}

	return m.toAlertLog(), nil
}

// QueryAlertLogs returns alert logs newest first unless another order is requested.
func (s *Storage) QueryAlertLogs(ctx context.Context, fns ...QueryFunc) (types.Collection[types.AlertLog], error) {
	q := newQuery(append([]QueryFunc{WithSortDesc(true)}, fns...)...)
	offset, limit := q.OffsetLimit()

	var total int64
	if err := q.where(s.db.WithContext(ctx).Model(&alertLog{})).Count(&total).Error; err != nil {
		return types.Collection[types.AlertLog]{}, translate(err)
	}

	var rows []alertLog
	err := q.where(s.db.WithContext(ctx)).Order(q.order("created_at")).Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return types.Collection[types.AlertLog]{}, translate(err)
	}

	alerts := make([]types.AlertLog, 0, len(rows))
	for _, r := range rows {
		alerts = append(alerts, r.toAlertLog())
	}

	return types.Collection[types.AlertLog]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(offset),
		Limit:      uint64(limit),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) ResolveAlertLog(ctx context.Context, alertLogID string, resolvedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&alertLog{}).Where("id = ?", alertLogID).Updates(map[string]any{
		"resolved":    true,
		"resolved_at": resolvedAt.UTC(),
	})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRows
	}
	return nil
}

func (s *Storage) DeleteAlertLog(ctx context.Context, alertLogID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", alertLogID).Delete(&alertLog{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRows
	}
	return nil
}
