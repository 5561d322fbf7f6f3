package cost

// Unit rate and cost constants for the revenue estimate.
// Rates are baseline self-storage market values; smaller units rent
// for more per square meter.
const (
	RateSmallPerM2  = 45.0 // $/m²/month, units under 2 m²
	RateMediumPerM2 = 35.0 // $/m²/month, 2-5 m²
	RateLargePerM2  = 28.0 // $/m²/month, 5-10 m²
	RateXLPerM2     = 22.0 // $/m²/month, 10 m² and up

	FitOutCostPerM2   = 350.0 // $/m² partitioning, door, lighting
	CorridorCostPerM2 = 120.0 // $/m² flooring, lighting, signage

	DefaultOccupancyRate = 0.85
	DefaultInterestRate  = 0.06
	DefaultTermYears     = 15
)

// rateForArea maps a unit's floor area onto its market rate band.
func rateForArea(area float64) float64 {
	switch {
	case area < 2:
		return RateSmallPerM2
	case area < 5:
		return RateMediumPerM2
	case area < 10:
		return RateLargePerM2
	default:
		return RateXLPerM2
	}
}
