package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrey-kobelev/fitness-tracker/internal/training"
)

func TestReadPackageUnknownTraining(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		data        []*float64
	}{
		{"unrelated code", "XYZ", Values(1, 2, 3)},
		{"lowercase code", "run", Values(15000, 1, 75)},
		{"empty code", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadPackage(tc.workoutType, tc.data)
			require.ErrorIs(t, err, ErrUnknownTraining)
		})
	}
}

func TestReadPackageWrongValueCount(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		data        []*float64
	}{
		{"running too short", CodeRunning, Values(15000, 1)},
		{"running too long", CodeRunning, Values(15000, 1, 75, 180)},
		{"walking too short", CodeSportsWalking, Values(9000, 1, 75)},
		{"walking too long", CodeSportsWalking, Values(9000, 1, 75, 180, 25)},
		{"swimming too short", CodeSwimming, Values(720, 1, 80, 25)},
		{"swimming too long", CodeSwimming, Values(720, 1, 80, 25, 40, 7)},
		{"no data at all", CodeRunning, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadPackage(tc.workoutType, tc.data)
			require.ErrorIs(t, err, ErrInvalidPackage)
		})
	}
}

func TestReadPackageDroppedSample(t *testing.T) {
	for i := 0; i < runningPackageLen; i++ {
		data := Values(15000, 1, 75)
		data[i] = nil
		_, err := ReadPackage(CodeRunning, data)
		require.ErrorIs(t, err, ErrInvalidPackage, "пропуск на позиции %d", i)
	}
	for i := 0; i < swimmingPackageLen; i++ {
		data := Values(720, 1, 80, 25, 40)
		data[i] = nil
		_, err := ReadPackage(CodeSwimming, data)
		require.ErrorIs(t, err, ErrInvalidPackage, "пропуск на позиции %d", i)
	}
}

// A dropped sample in an otherwise too-short list still reads as an invalid
// package, not as an index error.
func TestReadPackageDroppedSampleShortList(t *testing.T) {
	data := Values(15000, 1)
	data[1] = nil
	_, err := ReadPackage(CodeRunning, data)
	require.ErrorIs(t, err, ErrInvalidPackage)
}

func TestReadPackageNonPositiveDuration(t *testing.T) {
	for _, dur := range []float64{0, -1} {
		_, err := ReadPackage(CodeRunning, Values(15000, dur, 75))
		require.ErrorIs(t, err, ErrInvalidPackage, "длительность %v", dur)
	}
}

func TestReadPackageConstructsVariants(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		got, err := ReadPackage(CodeRunning, Values(15000, 1, 75))
		require.NoError(t, err)

		r, ok := got.(training.Running)
		require.True(t, ok, "ожидался training.Running, получен %T", got)
		assert.Equal(t, "Running", r.Kind())
		assert.InDelta(t, 9.75, r.Distance(), 1e-9)
	})

	t.Run("sports walking", func(t *testing.T) {
		got, err := ReadPackage(CodeSportsWalking, Values(9000, 1, 75, 180))
		require.NoError(t, err)

		w, ok := got.(training.SportsWalking)
		require.True(t, ok, "ожидался training.SportsWalking, получен %T", got)
		assert.Equal(t, "SportsWalking", w.Kind())
		// Height arrives in centimetres; the conversion shows up in the
		// calorie figure.
		assert.InDelta(t, 349.252, w.SpentCalories(), 1e-3)
	})

	t.Run("swimming", func(t *testing.T) {
		got, err := ReadPackage(CodeSwimming, Values(720, 1, 80, 25, 40))
		require.NoError(t, err)

		s, ok := got.(training.Swimming)
		require.True(t, ok, "ожидался training.Swimming, получен %T", got)
		assert.Equal(t, "Swimming", s.Kind())
		assert.InDelta(t, 1.0, s.MeanSpeed(), 1e-9)
		assert.InDelta(t, 336.0, s.SpentCalories(), 1e-9)
	})
}

func TestValues(t *testing.T) {
	data := Values(720, 1, 80.5)
	require.Len(t, data, 3)
	for i, want := range []float64{720, 1, 80.5} {
		require.NotNil(t, data[i])
		assert.Equal(t, want, *data[i])
	}
}
