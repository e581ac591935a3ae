package database

import (
	"context"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gorm.io/gorm"
)

const defaultLimit = 100
const maxLimit = 1000

type QueryFunc func(*Query) *Query

type Query struct {
	ID        string
	DeviceID  string
	UserID    string
	ValueType string

	Active   *bool
	Resolved *bool

	sortDesc bool

	offset *int
	limit  *int
}

func newQuery(fns ...QueryFunc) *Query {
	q := &Query{}
	for _, fn := range fns {
		q = fn(q)
	}
	return q
}

// where applies the filters of q. column names are shared by all tables that carry them.
func (q Query) where(db *gorm.DB) *gorm.DB {
	if q.ID != "" {
		db = db.Where("id = ?", q.ID)
	}
	if q.DeviceID != "" {
		db = db.Where("device_id = ?", q.DeviceID)
	}
	if q.UserID != "" {
		db = db.Where("user_id = ?", q.UserID)
	}
	if q.Active != nil {
		db = db.Where("active = ?", *q.Active)
	}
	if q.Resolved != nil {
		db = db.Where("resolved = ?", *q.Resolved)
	}
	return db
}

func (q Query) OffsetLimit() (int, int) {
	offset := 0
	limit := defaultLimit

	if q.offset != nil && *q.offset > 0 {
		offset = *q.offset
	}
	if q.limit != nil && *q.limit > 0 {
		limit = min(*q.limit, maxLimit)
	}

	return offset, limit
}

func (q Query) order(column string) string {
	if q.sortDesc {
		return column + " DESC"
	}
	return column + " ASC"
}

func WithID(id string) QueryFunc {
	return func(q *Query) *Query {
		q.ID = id
		return q
	}
}

func WithDeviceID(deviceID string) QueryFunc {
	return func(q *Query) *Query {
		q.DeviceID = deviceID
		return q
	}
}

func WithUserID(userID string) QueryFunc {
	return func(q *Query) *Query {
		q.UserID = userID
		return q
	}
}

func WithValueType(valueType string) QueryFunc {
	return func(q *Query) *Query {
		q.ValueType = valueType
		return q
	}
}

func WithActive(active bool) QueryFunc {
	return func(q *Query) *Query {
		q.Active = &active
		return q
	}
}

func WithResolved(resolved bool) QueryFunc {
	return func(q *Query) *Query {
		q.Resolved = &resolved
		return q
	}
}

func WithSortDesc(desc bool) QueryFunc {
	return func(q *Query) *Query {
		q.sortDesc = desc
		return q
	}
}

func WithOffset(offset int) QueryFunc {
	return func(q *Query) *Query {
		q.offset = &offset
		return q
	}
}

func WithLimit(limit int) QueryFunc {
	return func(q *Query) *Query {
		q.limit = &limit
		return q
	}
}

// ParseQuery converts url query parameters into query funcs. Unknown parameters are ignored.
func ParseQuery(ctx context.Context, params map[string][]string) []QueryFunc {
	log := logging.GetFromContext(ctx)

	fns := make([]QueryFunc, 0)

	for k, v := range params {
		if len(v) == 0 {
			continue
		}

		switch strings.ToLower(k) {
		case "deviceid", "device_id":
			fns = append(fns, WithDeviceID(v[0]))
		case "valuetype", "value_type":
			fns = append(fns, WithValueType(v[0]))
		case "resolved":
			if resolved, err := strconv.ParseBool(v[0]); err == nil {
				fns = append(fns, WithResolved(resolved))
			}
		case "active":
			if active, err := strconv.ParseBool(v[0]); err == nil {
				fns = append(fns, WithActive(active))
			}
		case "limit":
			if limit, err := strconv.Atoi(v[0]); err == nil {
				fns = append(fns, WithLimit(limit))
			}
		case "offset":
			if offset, err := strconv.Atoi(v[0]); err == nil {
				fns = append(fns, WithOffset(offset))
			}
		case "sortorder":
			fns = append(fns, WithSortDesc(strings.EqualFold(v[0], "desc")))
		default:
			log.Debug().Str("param", k).Msg("unknown query parameter")
		}
	}

	return fns
}
