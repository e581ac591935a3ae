package database

import (
	"context"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Storage) AddCondition(ctx context.Context, c types.Condition) (types.Condition, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	m := fromCondition(c)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return types.Condition{}, translate(err)
	}

	return m.toCondition(), nil
}

func (s *Storage) GetCondition(ctx context.Context, conditionID string) (types.Condition, error) {
	var m condition
	err := s.db.WithContext(ctx).Where("id = ?", conditionID).First(&m).Error
	if err != nil {
		return types.Condition{}, translate(err)
	}
	return m.toCondition(), nil
}

// GetConditionsByValueType returns all active conditions for a value type regardless of owner.
func (s *Storage) GetConditionsByValueType(ctx context.Context, valueType string) ([]types.Condition, error) {
	var rows []condition
	err := s.db.WithContext(ctx).
		Where("value_type = ? AND active = ?", valueType, true).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	conditions := make([]types.Condition, 0, len(rows))
	for _, r := range rows {
		conditions = append(conditions, r.toCondition())
	}
	return conditions, nil
}

func (s *Storage) QueryConditions(ctx context.Context, fns ...QueryFunc) (types.Collection[types.Condition], error) {
	q := newQuery(fns...)
	offset, limit := q.OffsetLimit()

	filter := func() *gorm.DB {
		db := q.where(s.db.WithContext(ctx).Model(&condition{}))
		if q.ValueType != "" {
			db = db.Where("value_type = ?", q.ValueType)
		}
		return db
	}

	var total int64
	if err := filter().Count(&total).Error; err != nil {
		return types.Collection[types.Condition]{}, translate(err)
	}

	var rows []condition
	if err := filter().Order(q.order("created_at")).Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return types.Collection[types.Condition]{}, translate(err)
	}

	conditions := make([]types.Condition, 0, len(rows))
	for _, r := range rows {
		conditions = append(conditions, r.toCondition())
	}

	return types.Collection[types.Condition]{
		Data:       conditions,
		Count:      uint64(len(conditions)),
		Offset:     uint64(offset),
		Limit:      uint64(limit),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) UpdateCondition(ctx context.Context, conditionID string, u types.ConditionUpdate) (types.Condition, error) {
	cols := conditionColumns(u)
	if len(cols) > 0 {
		result := s.db.WithContext(ctx).Model(&condition{}).Where("id = ?", conditionID).Updates(cols)
		if result.Error != nil {
			return types.Condition{}, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return types.Condition{}, ErrNoRows
		}
	}

	return s.GetCondition(ctx, conditionID)
}

func (s *Storage) DeleteCondition(ctx context.Context, conditionID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", conditionID).Delete(&condition{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRows
	}
	return nil
}
