package database

import (
	"context"
	"fmt"

	"github.com/diwise/iot-telemetry/pkg/types"
	"gorm.io/gorm/clause"
)

func (s *Storage) AddDevice(ctx context.Context, d types.Device) error {
	m := fromDevice(d)
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
	return translate(err)
}

func (s *Storage) GetDevice(ctx context.Context, deviceID string) (types.Device, error) {
	var m device
	err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&m).Error
	if err != nil {
		return types.Device{}, translate(err)
	}
	return m.toDevice(), nil
}

func (s *Storage) QueryDevices(ctx context.Context, fns ...QueryFunc) (types.Collection[types.Device], error) {
	q := newQuery(fns...)
	offset, limit := q.OffsetLimit()

	var total int64
	err := q.where(s.db.WithContext(ctx).Model(&device{})).Count(&total).Error
	if err != nil {
		return types.Collection[types.Device]{}, translate(err)
	}

	var rows []device
	err = q.where(s.db.WithContext(ctx)).Order(q.order("device_id")).Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return types.Collection[types.Device]{}, translate(err)
	}

	devices := make([]types.Device, 0, len(rows))
	for _, r := range rows {
		devices = append(devices, r.toDevice())
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     uint64(offset),
		Limit:      uint64(limit),
		TotalCount: uint64(total),
	}, nil
}

// FindOwningUser returns the id of the user that owns the device.
func (s *Storage) FindOwningUser(ctx context.Context, deviceID string) (string, error) {
	var m device
	err := s.db.WithContext(ctx).Select("user_id").Where("device_id = ?", deviceID).First(&m).Error
	if err != nil {
		return "", translate(err)
	}
	return m.UserID, nil
}

func (s *Storage) UpdateDevice(ctx context.Context, deviceID string, u types.DeviceUpdate) (types.Device, error) {
	cols := deviceColumns(u)
	if len(cols) > 0 {
		result := s.db.WithContext(ctx).Model(&device{}).Where("device_id = ?", deviceID).Updates(cols)
		if result.Error != nil {
			return types.Device{}, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return types.Device{}, ErrNoRows
		}
	}

	return s.GetDevice(ctx, deviceID)
}

// TransferDevice moves a device, its telemetry and its alert logs to another user.
func (s *Storage) TransferDevice(ctx context.Context, deviceID, newUserID string) error {
	if newUserID == "" {
		return fmt.Errorf("%w: new owner is required", ErrStoreFailed)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translate(tx.Error)
	}

	result := tx.Model(&device{}).Where("device_id = ?", deviceID).Update("user_id", newUserID)
	if result.Error != nil {
		tx.Rollback()
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrNoRows
	}

	for _, model := range []any{&telemetryRecord{}, &alertLog{}} {
		if err := tx.Model(model).Where("device_id = ?", deviceID).Update("user_id", newUserID).Error; err != nil {
			tx.Rollback()
			return translate(err)
		}
	}

	return translate(tx.Commit().Error)
}

func (s *Storage) DeleteDevice(ctx context.Context, deviceID string) error {
	result := s.db.WithContext(ctx).Where("device_id = ?", deviceID).Delete(&device{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoRows
	}
	return nil
}
