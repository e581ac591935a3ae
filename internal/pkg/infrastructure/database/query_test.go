package database

import (
	"context"
	"net/url"
	"testing"

	"github.com/matryer/is"
)

func TestParseQuery(t *testing.T) {
	is := is.New(t)

	params, _ := url.ParseQuery("deviceId=dev-1&valueType=temperature&limit=5&offset=10&resolved=true&bogus=1")
	q := newQuery(ParseQuery(context.Background(), params)...)

	is.Equal(q.DeviceID, "dev-1")
	is.Equal(q.ValueType, "temperature")
	is.Equal(*q.Resolved, true)

	offset, limit := q.OffsetLimit()
	is.Equal(offset, 10)
	is.Equal(limit, 5)
}

func TestOffsetLimitDefaultsAndCaps(t *testing.T) {
	is := is.New(t)

	offset, limit := newQuery().OffsetLimit()
	is.Equal(offset, 0)
	is.Equal(limit, defaultLimit)

	_, limit = newQuery(WithLimit(1_000_000)).OffsetLimit()
	is.Equal(limit, maxLimit)
}
