package main

import (
	"fmt"

	"github.com/andrey-kobelev/fitness-tracker/internal/sensor"
	"github.com/andrey-kobelev/fitness-tracker/internal/training"
)

func main() {
	packages := []sensor.Package{
		{WorkoutType: sensor.CodeSwimming, Data: sensor.Values(720, 1, 80, 25, 40)},
		{WorkoutType: sensor.CodeRunning, Data: sensor.Values(15000, 1, 75)},
		{WorkoutType: sensor.CodeSportsWalking, Data: sensor.Values(9000, 1, 75, 180)},
	}

	for _, pkg := range packages {
		t, err := sensor.ReadPackage(pkg.WorkoutType, pkg.Data)
		if err != nil {
			// The error text is the user-facing message.
			fmt.Println(err)
			continue
		}
		fmt.Println(training.Info(t))
	}
}
