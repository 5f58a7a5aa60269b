// Package sensor turns raw tracker packages into validated workout records.
package sensor

import (
	"errors"

	"github.com/andrey-kobelev/fitness-tracker/internal/training"
)

// Workout type codes recognised in sensor packages.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

// Expected value counts per workout code.
const (
	swimmingPackageLen      = 5 // action, duration, weight, lengthPool, countPool
	runningPackageLen       = 3 // action, duration, weight
	sportsWalkingPackageLen = 4 // action, duration, weight, height
)

// The error values double as the exact user-facing messages, so callers
// print them verbatim.
var (
	// ErrUnknownTraining reports a workout code outside the recognised set.
	ErrUnknownTraining = errors.New("Неизвестная тренировка.")

	// ErrInvalidPackage reports a malformed value list: a dropped sample,
	// a wrong value count or a non-positive duration.
	ErrInvalidPackage = errors.New("Некорректный пакет данных.")
)

// Package is one raw reading from the tracker: a workout code plus the
// ordered measurement values. A nil element marks a sample the tracker
// dropped.
type Package struct {
	WorkoutType string
	Data        []*float64
}

// Values packs plain numbers into the Data layout of a Package.
func Values(vs ...float64) []*float64 {
	data := make([]*float64, len(vs))
	for i := range vs {
		v := vs[i]
		data[i] = &v
	}
	return data
}

// ReadPackage validates one raw package and constructs the matching workout
// record. Validation completes before construction, so a partially filled
// record is never returned.
func ReadPackage(workoutType string, data []*float64) (training.Training, error) {
	switch workoutType {
	case CodeSwimming:
		if err := validate(data, swimmingPackageLen); err != nil {
			return nil, err
		}
		return training.NewSwimming(int(*data[0]), *data[1], *data[2], *data[3], int(*data[4])), nil
	case CodeRunning:
		if err := validate(data, runningPackageLen); err != nil {
			return nil, err
		}
		return training.NewRunning(int(*data[0]), *data[1], *data[2]), nil
	case CodeSportsWalking:
		if err := validate(data, sportsWalkingPackageLen); err != nil {
			return nil, err
		}
		return training.NewSportsWalking(int(*data[0]), *data[1], *data[2], *data[3]), nil
	default:
		return nil, ErrUnknownTraining
	}
}

// validate rejects dropped samples, then a wrong value count, then a
// non-positive duration, in that order.
func validate(data []*float64, want int) error {
	for _, v := range data {
		if v == nil {
			return ErrInvalidPackage
		}
	}
	if len(data) != want {
		return ErrInvalidPackage
	}
	// data[1] is the duration for every variant; a non-positive value
	// would zero out every speed and calorie figure downstream.
	if *data[1] <= 0 {
		return ErrInvalidPackage
	}
	return nil
}
