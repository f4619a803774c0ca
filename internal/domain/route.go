package domain

// Money is an amount in a provider-reported currency.
type Money struct {
	Value    float64
	Currency string
}

// Fare is one priced entry within a toll record. A toll point may expose
// several alternative charge structures; ReturnJourney marks fares that only
// apply to the reverse leg of a round trip and must be excluded from one-way
// cost computation.
type Fare struct {
	Name          string
	Price         Money
	ReturnJourney bool
}

// CollectionLocation is a named place where a toll is collected (a booth,
// plaza or gantry). Only the display name is relevant to cost computation.
type CollectionLocation struct {
	Name string
}

// TollRecord is one raw toll signal attached to a route section, as reported
// by the routing provider. CountryCode is ISO alpha-3. A record with no fares
// may still incur a cost if its country uses a flat-rate scheme.
type TollRecord struct {
	CountryCode         string
	Fares               []Fare
	TollSystemName      string
	CollectionLocations []CollectionLocation
}

// TollSystemRecord names a toll system a section passes through.
type TollSystemRecord struct {
	Name string
}

// Section is one piece of a provider route with its raw toll signals.
type Section struct {
	LengthMeters    int
	DurationSeconds int
	Tolls           []TollRecord
	TollSystems     []TollSystemRecord
}

// Route is an ordered list of sections as received from the routing provider.
// Routes are immutable once received: they are read, never mutated.
type Route struct {
	ID       string
	Sections []Section
}

// TotalLengthMeters sums section lengths.
func (r *Route) TotalLengthMeters() int {
	total := 0
	for _, s := range r.Sections {
		total += s.LengthMeters
	}
	return total
}

// TotalDurationSeconds sums section durations.
func (r *Route) TotalDurationSeconds() int {
	total := 0
	for _, s := range r.Sections {
		total += s.DurationSeconds
	}
	return total
}
