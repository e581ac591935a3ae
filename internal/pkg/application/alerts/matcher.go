package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const unnamedCondition = "Unnamed condition"

var errNotANumber = fmt.Errorf("value is not a number")
var errNotABool = fmt.Errorf("value is not a boolean")

// Match decides whether a single observed value triggers the condition and, if so,
// returns a human readable message describing the breach. Bounds are checked in the
// order min, max, exact and the first breach wins. Motion values only support exact.
func Match(ctx context.Context, c types.Condition, observed any, valueType string) (bool, string) {
	name := c.Name
	if name == "" {
		name = unnamedCondition
	}

	if valueType == types.ValueTypeMotion {
		return matchMotion(ctx, c, observed, name)
	}

	if !c.HasBounds() {
		return false, ""
	}

	v, err := toFloat(observed)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Str("value_type", valueType).Str("condition_id", c.ID).Msgf("unable to compare observed value %v", observed)
		return false, ""
	}

	if c.MinValue != nil && v < *c.MinValue {
		return true, fmt.Sprintf("%s: %s (%s) below minimum (%s)", name, valueType, formatNumber(v), formatNumber(*c.MinValue))
	}

	if c.MaxValue != nil && v > *c.MaxValue {
		return true, fmt.Sprintf("%s: %s (%s) above maximum (%s)", name, valueType, formatNumber(v), formatNumber(*c.MaxValue))
	}

	if c.ExactValue != nil && v == *c.ExactValue {
		return true, fmt.Sprintf("%s: %s (%s) equals threshold (%s)", name, valueType, formatNumber(v), formatNumber(*c.ExactValue))
	}

	return false, ""
}

func matchMotion(ctx context.Context, c types.Condition, observed any, name string) (bool, string) {
	if c.ExactValue == nil {
		return false, ""
	}

	detected, err := toBool(observed)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Str("condition_id", c.ID).Msgf("unable to compare observed motion value %v", observed)
		return false, ""
	}

	expected := *c.ExactValue != 0
	if detected != expected {
		return false, ""
	}

	return true, fmt.Sprintf("%s: Motion detected = %t", name, detected)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return 0, fmt.Errorf("%w: %q", errNotANumber, n)
		}
		return f, nil
	}

	return 0, fmt.Errorf("%w: %T", errNotANumber, v)
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("%w: %q", errNotABool, b)
		}
		return parsed, nil
	case nil:
		return false, fmt.Errorf("%w: nil", errNotABool)
	}

	f, err := toFloat(v)
	if err != nil {
		return false, fmt.Errorf("%w: %T", errNotABool, v)
	}

	return f != 0, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
