package database

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// SeedDevices registers the devices listed in a semicolon separated file with the columns
//
//	deviceId;userId;name;sensorType;location;latitude;longitude
//
// The first row is a header. Known devices are updated and moved to the listed owner.
func (s *Storage) SeedDevices(ctx context.Context, reader io.Reader) error {
	r := csv.NewReader(reader)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return err
	}

	devices, err := devicesFromRows(rows)
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)
	log.Info().Int("count", len(devices)).Msg("loaded devices from file")

	for _, d := range devices {
		existing, err := s.GetDevice(ctx, d.DeviceID)
		if errors.Is(err, ErrNoRows) {
			if err = s.AddDevice(ctx, d); err != nil {
				log.Error().Err(err).Str("device_id", d.DeviceID).Msg("could not create new device")
			}
			continue
		}
		if err != nil {
			return err
		}

		if existing.UserID != d.UserID {
			log.Warn().Str("device_id", d.DeviceID).Str("old_user_id", existing.UserID).Str("new_user_id", d.UserID).Msg("owner changed")
			if err = s.TransferDevice(ctx, d.DeviceID, d.UserID); err != nil {
				log.Error().Err(err).Str("device_id", d.DeviceID).Msg("could not transfer device")
				continue
			}
		}

		_, err = s.UpdateDevice(ctx, d.DeviceID, types.DeviceUpdate{
			Name:       &d.Name,
			SensorType: &d.SensorType,
			Location:   &d.Location,
		})
		if err != nil {
			log.Error().Err(err).Str("device_id", d.DeviceID).Msg("could not update device")
		}
	}

	return nil
}

func devicesFromRows(rows [][]string) ([]types.Device, error) {
	devices := []types.Device{}
	now := time.Now().UTC()

	optionalFloat := func(s string) (*float64, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return &f, nil
	}

	column := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}

		d := types.Device{
			DeviceID:     column(row, 0),
			UserID:       column(row, 1),
			Name:         column(row, 2),
			SensorType:   column(row, 3),
			Location:     types.Location{Name: column(row, 4)},
			RegisteredAt: now,
		}

		if d.DeviceID == "" || d.UserID == "" {
			return nil, fmt.Errorf("row %d: deviceId and userId are required", i+1)
		}
		if d.Name == "" {
			d.Name = d.DeviceID
		}

		var err error
		if d.Location.Latitude, err = optionalFloat(column(row, 5)); err != nil {
			return nil, fmt.Errorf("row %d contains invalid latitude: %w", i+1, err)
		}
		if d.Location.Longitude, err = optionalFloat(column(row, 6)); err != nil {
			return nil, fmt.Errorf("row %d contains invalid longitude: %w", i+1, err)
		}

		devices = append(devices, d)
	}

	return devices, nil
}
