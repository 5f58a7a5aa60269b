package training

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// InfoMessage is the workout summary prepared for display.
type InfoMessage struct {
	TrainingType string  // variant identifier, e.g. "Running"
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Info derives the display summary from a workout record, invoking each
// capability exactly once.
func Info(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// The report mixes Russian labels with English digit conventions: comma as
// the thousands separator, period as the decimal point.
var printer = message.NewPrinter(language.English)

// grouped renders v with exactly three fraction digits and thousands
// grouping.
func grouped(v float64) string {
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(3),
		number.MaxFractionDigits(3),
	))
}

// String renders the fixed one-line report. Distance, speed and calories
// get thousands grouping; duration never does.
func (m InfoMessage) String() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %s км; Ср. скорость: %s км/ч; Потрачено ккал: %s.",
		m.TrainingType,
		m.Duration,
		grouped(m.Distance),
		grouped(m.Speed),
		grouped(m.Calories),
	)
}
