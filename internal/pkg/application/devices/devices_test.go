package devices

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/pkg/types"
)

func testSetup() *DeviceRepositoryMock {
	owners := map[string]string{"dev-1": "user-1"}

	return &DeviceRepositoryMock{
		AddDeviceFunc: func(ctx context.Context, d types.Device) error {
			if _, ok := owners[d.DeviceID]; ok {
				return database.ErrAlreadyExist
			}
			return nil
		},
		FindOwningUserFunc: func(ctx context.Context, deviceID string) (string, error) {
			owner, ok := owners[deviceID]
			if !ok {
				return "", database.ErrNoRows
			}
			return owner, nil
		},
		QueryDevicesFunc: func(ctx context.Context, conditions ...database.QueryFunc) (types.Collection[types.Device], error) {
			return types.Collection[types.Device]{}, nil
		},
		UpdateDeviceFunc: func(ctx context.Context, deviceID string, u types.DeviceUpdate) (types.Device, error) {
			return types.Device{DeviceID: deviceID, UserID: owners[deviceID], Name: *u.Name}, nil
		},
		DeleteDeviceFunc: func(ctx context.Context, deviceID string) error {
			return nil
		},
		TransferDeviceFunc: func(ctx context.Context, deviceID, newUserID string) error {
			if _, ok := owners[deviceID]; !ok {
				return database.ErrNoRows
			}
			return nil
		},
	}
}

func TestRegisterAppliesDefaults(t *testing.T) {
	is := is.New(t)
	r := testSetup()

	d, err := New(r).Register(context.Background(), "user-2", types.Device{UserID: "someone", Name: " greenhouse ", SensorType: "climate"})

	is.NoErr(err)
	is.True(d.DeviceID != "")
	is.Equal(d.UserID, "user-2")
	is.Equal(d.Name, "greenhouse")
	is.Equal(d.Status, []string{"active"})
	is.True(!d.RegisteredAt.IsZero())
	is.Equal(r.AddDeviceCalls()[0].D.DeviceID, d.DeviceID)
}

func TestRegisterErrors(t *testing.T) {
	svc := New(testSetup())

	testCases := map[string]struct {
		device types.Device
		err    error
	}{
		"missing name":        {types.Device{SensorType: "climate"}, ErrValidation},
		"missing sensor type": {types.Device{Name: "greenhouse"}, ErrValidation},
		"existing device":     {types.Device{DeviceID: "dev-1", Name: "greenhouse", SensorType: "climate"}, ErrAlreadyExists},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			_, err := svc.Register(context.Background(), "user-1", tc.device)
			is.True(errors.Is(err, tc.err))
		})
	}
}

func TestQueryIsScopedToUser(t *testing.T) {
	is := is.New(t)
	r := testSetup()

	_, err := New(r).Query(context.Background(), "user-1", map[string][]string{"limit": {"5"}, "resolved": {"true"}})
	is.NoErr(err)

	// user filter plus limit, resolved has no meaning for devices
	is.Equal(len(r.QueryDevicesCalls()[0].Conditions), 2)
}

func TestUpdateAndDeleteAreOwnerOnly(t *testing.T) {
	is := is.New(t)
	r := testSetup()
	svc := New(r)

	name := "renamed"
	_, err := svc.Update(context.Background(), "user-2", "dev-1", types.DeviceUpdate{Name: &name})
	is.True(errors.Is(err, ErrNotOwner))

	_, err = svc.Update(context.Background(), "user-1", "dev-9", types.DeviceUpdate{Name: &name})
	is.True(errors.Is(err, ErrDeviceNotFound))

	empty := " "
	_, err = svc.Update(context.Background(), "user-1", "dev-1", types.DeviceUpdate{Name: &empty})
	is.True(errors.Is(err, ErrValidation))

	is.Equal(len(r.UpdateDeviceCalls()), 0)

	d, err := svc.Update(context.Background(), "user-1", "dev-1", types.DeviceUpdate{Name: &name})
	is.NoErr(err)
	is.Equal(d.Name, "renamed")

	err = svc.Delete(context.Background(), "user-2", "dev-1")
	is.True(errors.Is(err, ErrNotOwner))
	is.Equal(len(r.DeleteDeviceCalls()), 0)

	is.NoErr(svc.Delete(context.Background(), "user-1", "dev-1"))
}

func TestTransfer(t *testing.T) {
	is := is.New(t)
	r := testSetup()
	svc := New(r)

	err := svc.Transfer(context.Background(), "dev-1", "")
	is.True(errors.Is(err, ErrValidation))

	err = svc.Transfer(context.Background(), "dev-9", "user-2")
	is.True(errors.Is(err, ErrDeviceNotFound))

	is.NoErr(svc.Transfer(context.Background(), "dev-1", "user-2"))
	is.Equal(r.TransferDeviceCalls()[1].NewUserID, "user-2")
}
