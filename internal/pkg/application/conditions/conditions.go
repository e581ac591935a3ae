package conditions

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrConditionNotFound = errors.New("condition not found")
	ErrDeviceNotFound    = errors.New("device not found")
)

var valueTypePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,49}$`)

//go:generate moq -rm -out conditionrepository_mock.go . ConditionRepository
type ConditionRepository interface {
	AddCondition(ctx context.Context, c types.Condition) (types.Condition, error)
	GetCondition(ctx context.Context, conditionID string) (types.Condition, error)
	QueryConditions(ctx context.Context, conditions ...database.QueryFunc) (types.Collection[types.Condition], error)
	UpdateCondition(ctx context.Context, conditionID string, u types.ConditionUpdate) (types.Condition, error)
	DeleteCondition(ctx context.Context, conditionID string) error
}

//go:generate moq -rm -out devicerepository_mock.go . DeviceRepository
type DeviceRepository interface {
	FindOwningUser(ctx context.Context, deviceID string) (string, error)
}

//go:generate moq -rm -out conditionservice_mock.go . ConditionService
type ConditionService interface {
	Create(ctx context.Context, userID string, c types.Condition) (types.Condition, error)
	Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.Condition], error)
	Update(ctx context.Context, userID, conditionID string, u types.ConditionUpdate) (types.Condition, error)
	Delete(ctx context.Context, userID, conditionID string) error
}

type conditionSvc struct {
	storage ConditionRepository
	devices DeviceRepository
}

func New(r ConditionRepository, d DeviceRepository) ConditionService {
	return &conditionSvc{
		storage: r,
		devices: d,
	}
}

// Create stores a new condition owned by userID. Conditions without bounds are
// accepted but never trigger.
func (svc conditionSvc) Create(ctx context.Context, userID string, c types.Condition) (types.Condition, error) {
	c.ID = ""
	c.UserID = userID
	c.ValueType = strings.TrimSpace(c.ValueType)

	if !valueTypePattern.MatchString(c.ValueType) {
		return types.Condition{}, fmt.Errorf("%w: invalid valueType %q", ErrValidation, c.ValueType)
	}

	if c.Scope == "" {
		c.Scope = types.ScopeGeneral
	}
	if !c.Scope.Valid() {
		return types.Condition{}, fmt.Errorf("%w: invalid scope %q", ErrValidation, c.Scope)
	}

	if len(c.NotificationMethods) == 0 {
		c.NotificationMethods = []string{types.NotificationMethodLog}
	}

	if c.DeviceID != "" {
		if err := svc.checkOwnership(ctx, userID, c.DeviceID); err != nil {
			return types.Condition{}, err
		}
	}

	if !c.HasBounds() {
		log := logging.GetFromContext(ctx)
		log.Info().Str("value_type", c.ValueType).Msg("condition created without bounds, it will never trigger")
	}

	return svc.storage.AddCondition(ctx, c)
}

func (svc conditionSvc) checkOwnership(ctx context.Context, userID, deviceID string) error {
	owner, err := svc.devices.FindOwningUser(ctx, deviceID)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return ErrDeviceNotFound
		}
		return err
	}
	if owner != userID {
		return ErrDeviceNotFound
	}
	return nil
}

func (svc conditionSvc) Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.Condition], error) {
	conditions := append(database.ParseQuery(ctx, params), database.WithUserID(userID))
	return svc.storage.QueryConditions(ctx, conditions...)
}

func (svc conditionSvc) get(ctx context.Context, userID, conditionID string) (types.Condition, error) {
	c, err := svc.storage.GetCondition(ctx, conditionID)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return types.Condition{}, ErrConditionNotFound
		}
		return types.Condition{}, err
	}
	if c.UserID != userID {
		return types.Condition{}, ErrConditionNotFound
	}
	return c, nil
}

func (svc conditionSvc) Update(ctx context.Context, userID, conditionID string, u types.ConditionUpdate) (types.Condition, error) {
	if _, err := svc.get(ctx, userID, conditionID); err != nil {
		return types.Condition{}, err
	}

	if err := validateClear(u); err != nil {
		return types.Condition{}, err
	}

	return svc.storage.UpdateCondition(ctx, conditionID, u)
}

func validateClear(u types.ConditionUpdate) error {
	bounds := map[string]*float64{
		types.BoundMin:   u.MinValue,
		types.BoundMax:   u.MaxValue,
		types.BoundExact: u.ExactValue,
	}

	for _, b := range u.Clear {
		v, ok := bounds[b]
		if !ok {
			return fmt.Errorf("%w: cannot clear %q", ErrValidation, b)
		}
		if v != nil {
			return fmt.Errorf("%w: %s is both set and cleared", ErrValidation, b)
		}
	}
	return nil
}

func (svc conditionSvc) Delete(ctx context.Context, userID, conditionID string) error {
	if _, err := svc.get(ctx, userID, conditionID); err != nil {
		return err
	}

	return svc.storage.DeleteCondition(ctx, conditionID)
}

// ApplyOperator expresses a comparison against a threshold as condition bounds.
// Only operators that the min, max and exact bounds can represent are accepted.
func ApplyOperator(c *types.Condition, operator string, threshold float64) error {
	switch strings.TrimSpace(operator) {
	case ">":
		c.MaxValue = &threshold
	case "<":
		c.MinValue = &threshold
	case "==", "=":
		c.ExactValue = &threshold
	default:
		return fmt.Errorf("%w: unsupported operator %q", ErrValidation, operator)
	}
	return nil
}
