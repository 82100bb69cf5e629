package booking

// CostParams carries the inputs for deriving a booking's total cost.
// HourlyRate is nil when the provider is missing or has no rate set.
type CostParams struct {
	HourlyRate    *float64
	DurationHours int
}

// CostCalculator derives the total cost of a booking at creation time.
type CostCalculator interface {
	Calculate(params CostParams) float64
}

// HourlyRateCalculator prices a booking as hourly rate times duration.
// A missing rate yields a cost of 0.0 rather than an error.
type HourlyRateCalculator struct{}

// NewHourlyRateCalculator creates a new HourlyRateCalculator.
func NewHourlyRateCalculator() *HourlyRateCalculator {
	return &HourlyRateCalculator{}
}

// Calculate returns rate * duration, or 0.0 when no rate is known.
func (c *HourlyRateCalculator) Calculate(params CostParams) float64 {
	if params.HourlyRate == nil {
		return 0.0
	}
	return *params.HourlyRate * float64(params.DurationHours)
}
