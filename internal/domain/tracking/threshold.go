package tracking

// TemperatureBounds holds the effective min/max bounds for threshold
// evaluation. Either side may be nil, meaning that side is unbounded.
type TemperatureBounds struct {
	Min *float64
	Max *float64
}

// Evaluate classifies a temperature reading against the bounds.
//
// A reading strictly below Min yields AlertBelowMin; otherwise a reading
// strictly above Max yields AlertAboveMax; otherwise there is no alert.
// The two checks are independent: bounds with Min > Max are not rejected,
// the Min comparison simply takes precedence.
func (b TemperatureBounds) Evaluate(temperature float64) (AlertType, bool) {
	if b.Min != nil && temperature < *b.Min {
		return AlertBelowMin, true
	}
	if b.Max != nil && temperature > *b.Max {
		return AlertAboveMax, true
	}
	return "", false
}
