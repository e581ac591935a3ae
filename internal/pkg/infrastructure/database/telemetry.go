package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertTelemetry stores a record. The device must exist.
func (s *Storage) InsertTelemetry(ctx context.Context, r types.TelemetryRecord) (types.TelemetryRecord, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.DeviceID == "" || r.UserID == "" {
		return types.TelemetryRecord{}, fmt.Errorf("%w: telemetry requires device and user", ErrStoreFailed)
	}

	m := fromTelemetry(r)
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
	if err != nil {
		return types.TelemetryRecord{}, translate(err)
	}

	return m.toTelemetry(), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QueryTelemetry returns records newest first unless another order is requested.
func (s *Storage) QueryTelemetry(ctx context.Context, fns ...QueryFunc) (types.Collection[types.TelemetryRecord], error) {
	q := newQuery(append([]QueryFunc{WithSortDesc(true)}, fns...)...)
	offset, limit := q.OffsetLimit()

	filter := func() *gorm.DB {
		db := q.where(s.db.WithContext(ctx).Model(&telemetryRecord{}))
		if q.ValueType != "" {
			db = db.Where(`value_types LIKE ? ESCAPE '\'`, "%,"+likeEscaper.Replace(q.ValueType)+",%")
		}
		return db
	}

	var total int64
	if err := filter().Count(&total).Error; err != nil {
		return types.Collection[types.TelemetryRecord]{}, translate(err)
	}

	var rows []telemetryRecord
	err := filter().Order(q.order("event_date")).Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return types.Collection[types.TelemetryRecord]{}, translate(err)
	}

	records := make([]types.TelemetryRecord, 0, len(rows))
	for _, row := range rows {
		r := row.toTelemetry()
		if q.ValueType != "" {
			r.Values = lo.Filter(r.Values, func(v types.Value, _ int) bool {
				return v.ValueType == q.ValueType
			})
		}
		records = append(records, r)
	}

	return types.Collection[types.TelemetryRecord]{
		Data:       records,
		Count:      uint64(len(records)),
		Offset:     uint64(offset),
		Limit:      uint64(limit),
		TotalCount: uint64(total),
	}, nil
}
