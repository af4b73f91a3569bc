package intmath

// Ohm's-law helpers on milli-units: millivolts, milliamps, milliohms and
// milliwatts. Divisions by zero short-circuit to 0 so a missing motor
// parameter degrades to no drive instead of a fault.

// Current returns mA flowing through resistanceMOhm at voltageMV.
func Current(voltageMV, resistanceMOhm int32) int32 {
	if resistanceMOhm == 0 {
		return 0
	}
	return (voltageMV * 1000) / resistanceMOhm
}

// Voltage returns mV across resistanceMOhm carrying currentMA.
func Voltage(currentMA, resistanceMOhm int32) int32 {
	return (currentMA * resistanceMOhm) / 1000
}

// Resistance returns mOhm given voltageMV and currentMA.
func Resistance(voltageMV, currentMA int32) int32 {
	if currentMA == 0 {
		return 0
	}
	return (voltageMV * 1000) / currentMA
}

// Power returns mW dissipated at voltageMV and currentMA.
func Power(voltageMV, currentMA int32) int32 {
	return (voltageMV * currentMA) / 1000
}
