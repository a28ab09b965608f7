package ratings

import (
	"math"
	"strconv"
)

// Summary is the per-star histogram for a casino's reviews. Average
// is nil when there are no countable reviews.
type Summary struct {
	Breakdown map[string]int `json:"breakdown"`
	Total     int            `json:"total"`
	Average   *float64       `json:"average"`
}

// Tally counts ratings per star value 1-5. Out-of-range values are
// skipped rather than failing the aggregation.
func Tally(values []int) Summary {
	breakdown := make(map[string]int, 5)
	for star := 1; star <= 5; star++ {
		breakdown[strconv.Itoa(star)] = 0
	}

	total := 0
	sum := 0
	for _, v := range values {
		if v < 1 || v > 5 {
			continue
		}
		breakdown[strconv.Itoa(v)]++
		total++
		sum += v
	}

	s := Summary{Breakdown: breakdown, Total: total}
	if total > 0 {
		avg := math.Round(float64(sum)/float64(total)*100) / 100
		s.Average = &avg
	}
	return s
}
