package domain

// VehicleParams carries the physical and commercial parameters of the truck
// being routed. Physical parameters go to the routing provider; cost
// parameters feed route ranking.
type VehicleParams struct {
	AxleCount     int
	GrossWeightKg int

	// Operator cost model.
	EURPerKm    float64
	PricePerDay float64

	// AllInclusive switches ranking to the single negotiated total instead
	// of the per-km/per-day model.
	AllInclusive    bool
	AllInclusiveEUR float64
}

// DefaultAxleCount is assumed when the operator has not set one.
const DefaultAxleCount = 5
