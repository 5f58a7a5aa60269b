// Package training implements the calculation core of the fitness tracker.
// Each workout variant wraps one raw sensor reading and derives distance,
// mean speed and burned calories from it on demand.
package training

// Conversion constants shared by every variant.
const (
	lenStep   = 0.65  // metres covered by a single step
	mInKm     = 1000  // metres in a kilometre
	minInH    = 60    // minutes in an hour
	kmhInMsec = 0.278 // multiplier from km/h to m/s
	cmInM     = 100   // centimetres in a metre
)

// Calorie and stroke coefficients, fixed per variant.
const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingLenStep                  = 1.38 // metres covered by a single stroke
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is the capability set shared by every workout variant. All
// methods are pure: they recompute from the stored reading on every call
// and never mutate it.
type Training interface {
	// Kind reports the variant identifier used in workout reports.
	Kind() string
	// Duration reports the workout length in hours.
	Duration() float64
	// Distance reports the covered distance in kilometres.
	Distance() float64
	// MeanSpeed reports the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories reports the burned calories in kcal.
	SpentCalories() float64
}

// reading holds the sensor fields common to every workout variant.
type reading struct {
	action   int     // steps or strokes counted by the tracker
	duration float64 // workout length in hours
	weight   float64 // athlete weight in kg
}

func (r reading) Duration() float64 { return r.duration }

// actionDistance converts an action count to kilometres given the metres
// covered by a single action.
func actionDistance(action int, actionLen float64) float64 {
	return float64(action) * actionLen / mInKm
}

// meanSpeed is the common speed basis: full distance over elapsed hours.
// A non-positive duration degrades to zero speed rather than dividing by it.
func meanSpeed(distance, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return distance / duration
}

// Running is a workout produced by the step counter alone.
type Running struct {
	reading
}

// NewRunning constructs a Running record from raw sensor values: step
// count, duration in hours and athlete weight in kg.
func NewRunning(action int, duration, weight float64) Running {
	return Running{reading{action: action, duration: duration, weight: weight}}
}

func (r Running) Kind() string { return "Running" }

func (r Running) Distance() float64 { return actionDistance(r.action, lenStep) }

func (r Running) MeanSpeed() float64 { return meanSpeed(r.Distance(), r.duration) }

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * (r.duration * minInH)
}

// SportsWalking is a race-walking workout. The athlete's height joins the
// common fields because the calorie formula depends on it.
type SportsWalking struct {
	reading
	height float64 // metres
}

// NewSportsWalking constructs a SportsWalking record. The sensor reports
// height in centimetres; the record stores it in metres.
func NewSportsWalking(action int, duration, weight, heightCM float64) SportsWalking {
	return SportsWalking{
		reading: reading{action: action, duration: duration, weight: weight},
		height:  heightCM / cmInM,
	}
}

func (w SportsWalking) Kind() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 { return actionDistance(w.action, lenStep) }

func (w SportsWalking) MeanSpeed() float64 { return meanSpeed(w.Distance(), w.duration) }

func (w SportsWalking) SpentCalories() float64 {
	speedMsec := w.MeanSpeed() * kmhInMsec
	return (walkingCaloriesWeightMultiplier*w.weight +
		speedMsec*speedMsec/w.height*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minInH
}

// Swimming is a pool workout: stroke count plus pool geometry.
type Swimming struct {
	reading
	lengthPool float64 // pool length in metres
	countPool  int     // how many times the pool was crossed
}

// NewSwimming constructs a Swimming record from raw sensor values: stroke
// count, duration in hours, athlete weight in kg, pool length in metres
// and the number of times the pool was crossed.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		reading:    reading{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

func (s Swimming) Kind() string { return "Swimming" }

// Distance reports kilometres covered by strokes; a stroke is longer than
// a step, hence the dedicated length constant.
func (s Swimming) Distance() float64 { return actionDistance(s.action, swimmingLenStep) }

// MeanSpeed derives speed from pool geometry rather than stroke count: the
// pool length times the crossing count is the exact distance swum.
func (s Swimming) MeanSpeed() float64 {
	if s.duration <= 0 {
		return 0
	}
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration
}
