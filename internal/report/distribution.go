package report

import "github.com/itnewcomer/Memento/internal/models"

// Distribution counts days per rating. Counts[0] is rating 1.
type Distribution struct {
	Counts [5]int `json:"counts"`
}

func (d Distribution) Total() int {
	total := 0
	for _, c := range d.Counts {
		total += c
	}
	return total
}

// Ratios returns Counts[i]/Total, or all zeros when there is no data.
func (d Distribution) Ratios() [5]float64 {
	var out [5]float64
	total := d.Total()
	if total == 0 {
		return out
	}
	for i, c := range d.Counts {
		out[i] = float64(c) / float64(total)
	}
	return out
}

// RatingDistribution counts the scope's days by rating. Days without a
// record or with an out-of-range rating fall in no bucket.
func RatingDistribution(scope Scope, idx RatingIndex) Distribution {
	var dist Distribution
	for _, day := range scope.Days() {
		r, ok := idx[day]
		if !ok || !models.ValidRating(r) {
			continue
		}
		dist.Counts[r-1]++
	}
	return dist
}
