package sora

import "math"

// FeetPerMeter converts between the metric and imperial altitude inputs
const FeetPerMeter = 3.28084

// FeetToMeters converts feet to meters
func FeetToMeters(feet float64) float64 {
	return feet / FeetPerMeter
}

// MetersToFeet converts meters to feet
func MetersToFeet(meters float64) float64 {
	return meters * FeetPerMeter
}

// KineticEnergyJ returns the impact kinetic energy 1/2 m v² in joules
func KineticEnergyJ(massKg, speedMS float64) float64 {
	return 0.5 * massKg * speedMS * speedMS
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
