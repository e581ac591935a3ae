package alerts

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/matryer/is"
)

func ptr(f float64) *float64 {
	return &f
}

func TestMatchNumericBounds(t *testing.T) {
	ctx := context.Background()

	testCases := map[string]struct {
		condition types.Condition
		observed  any
		triggered bool
		message   string
	}{
		"above maximum": {
			condition: types.Condition{Name: "Hot", MaxValue: ptr(30)},
			observed:  35.0,
			triggered: true,
			message:   "Hot: temperature (35) above maximum (30)",
		},
		"below minimum": {
			condition: types.Condition{Name: "Cold", MinValue: ptr(5)},
			observed:  2.5,
			triggered: true,
			message:   "Cold: temperature (2.5) below minimum (5)",
		},
		"equals threshold": {
			condition: types.Condition{Name: "Exact", ExactValue: ptr(21.5)},
			observed:  21.5,
			triggered: true,
			message:   "Exact: temperature (21.5) equals threshold (21.5)",
		},
		"within range": {
			condition: types.Condition{Name: "Range", MinValue: ptr(10), MaxValue: ptr(30)},
			observed:  20,
			triggered: false,
		},
		"boundary is not a breach": {
			condition: types.Condition{Name: "Boundary", MaxValue: ptr(30)},
			observed:  30,
			triggered: false,
		},
		"min wins over max when both breach": {
			condition: types.Condition{Name: "Odd", MinValue: ptr(10), MaxValue: ptr(5)},
			observed:  7,
			triggered: true,
			message:   "Odd: temperature (7) below minimum (10)",
		},
		"numeric string is coerced": {
			condition: types.Condition{Name: "Hot", MaxValue: ptr(30)},
			observed:  "31",
			triggered: true,
			message:   "Hot: temperature (31) above maximum (30)",
		},
		"json number is coerced": {
			condition: types.Condition{Name: "Hot", MaxValue: ptr(30)},
			observed:  json.Number("40"),
			triggered: true,
			message:   "Hot: temperature (40) above maximum (30)",
		},
		"unparseable string never triggers": {
			condition: types.Condition{Name: "Hot", MaxValue: ptr(30)},
			observed:  "hot",
			triggered: false,
		},
		"nil never triggers": {
			condition: types.Condition{Name: "Hot", MaxValue: ptr(30)},
			observed:  nil,
			triggered: false,
		},
		"no bounds never triggers": {
			condition: types.Condition{Name: "Inert"},
			observed:  1000,
			triggered: false,
		},
		"missing name falls back": {
			condition: types.Condition{MaxValue: ptr(30)},
			observed:  31,
			triggered: true,
			message:   "Unnamed condition: temperature (31) above maximum (30)",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			triggered, message := Match(ctx, tc.condition, tc.observed, types.ValueTypeTemperature)

			is.Equal(triggered, tc.triggered)
			is.Equal(message, tc.message)
		})
	}
}

func TestMatchMotion(t *testing.T) {
	ctx := context.Background()
	detect := types.Condition{Name: "Motion", ExactValue: ptr(1)}

	testCases := map[string]struct {
		condition types.Condition
		observed  any
		triggered bool
		message   string
	}{
		"motion detected":           {detect, true, true, "Motion: Motion detected = true"},
		"no motion":                 {detect, false, false, ""},
		"numeric one is motion":     {detect, 1.0, true, "Motion: Motion detected = true"},
		"string true is motion":     {detect, "true", true, "Motion: Motion detected = true"},
		"garbage is not motion":     {detect, "maybe", false, ""},
		"expect no motion":          {types.Condition{Name: "Still", ExactValue: ptr(0)}, false, true, "Still: Motion detected = false"},
		"min and max are ignored":   {types.Condition{Name: "Motion", MinValue: ptr(1), MaxValue: ptr(0)}, true, false, ""},
		"no exact value is inert":   {types.Condition{Name: "Motion"}, true, false, ""},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			triggered, message := Match(ctx, tc.condition, tc.observed, types.ValueTypeMotion)

			is.Equal(triggered, tc.triggered)
			is.Equal(message, tc.message)
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	c := types.Condition{Name: "Hot", MinValue: ptr(0), MaxValue: ptr(30), ExactValue: ptr(15)}

	for _, v := range []any{-1, 15, 31, "x", true} {
		t1, m1 := Match(ctx, c, v, types.ValueTypeHumidity)
		t2, m2 := Match(ctx, c, v, types.ValueTypeHumidity)
		is.Equal(t1, t2)
		is.Equal(m1, m2)
		is.Equal(t1, m1 != "")
	}
}
