// Package presets carries the built-in Norwegian party list used as a
// starting point for simulations.
package presets

// Party is a preset party with its polling percentage.
type Party struct {
	Name    string  `json:"name"`
	Short   string  `json:"short"`
	Percent float64 `json:"percent"`
}

// DefaultTotalSeats is the default number of seats in a simulated
// district.
const DefaultTotalSeats = 10

// Norwegian returns the preset party list with recent polling numbers.
// The slice is a fresh copy; callers may mutate it freely.
func Norwegian() []Party {
	return []Party{
		{Name: "Arbeiderpartiet", Short: "Ap", Percent: 26.2},
		{Name: "Høyre", Short: "H", Percent: 20.4},
		{Name: "Senterpartiet", Short: "Sp", Percent: 13.5},
		{Name: "Fremskrittspartiet", Short: "FrP", Percent: 11.6},
		{Name: "Sosialistisk Venstreparti", Short: "SV", Percent: 7.6},
		{Name: "Rødt", Short: "R", Percent: 4.7},
		{Name: "Venstre", Short: "V", Percent: 4.6},
		{Name: "Miljøpartiet De Grønne", Short: "MDG", Percent: 3.9},
		{Name: "Kristelig Folkeparti", Short: "KrF", Percent: 3.8},
	}
}

// Percentages returns the preset list as a party-percentage map ready
// for the percentage adapter.
func Percentages() map[string]float64 {
	parties := Norwegian()
	out := make(map[string]float64, len(parties))
	for _, p := range parties {
		out[p.Name] = p.Percent
	}
	return out
}
