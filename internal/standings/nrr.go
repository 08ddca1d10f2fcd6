package standings

import (
	"math"

	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
)

const BallsPerOver = 6

// BallsFromOvers converts cricket over notation (19.4 = 19 overs and 4 balls)
// into legal deliveries.
func BallsFromOvers(overs float64) (int, error) {
	if math.IsNaN(overs) || math.IsInf(overs, 0) || overs < 0 {
		return 0, apperr.Validation("overs %v must be a non-negative number", overs)
	}
	whole := math.Floor(overs)
	balls := int(math.Round((overs - whole) * 10))
	if balls >= BallsPerOver {
		return 0, apperr.Validation("overs %v: ball part must be between 0 and 5", overs)
	}
	return int(whole)*BallsPerOver + balls, nil
}

// OversFromBalls renders a ball count back into over notation.
func OversFromBalls(balls int) float64 {
	if balls <= 0 {
		return 0
	}
	return float64(balls/BallsPerOver) + float64(balls%BallsPerOver)/10
}

// NetRunRate is runs scored per over minus runs conceded per over, rounded to
// three decimals. With no overs faced or bowled the rate is undefined and
// reported as 0.
func NetRunRate(runsFor, ballsFaced, runsAgainst, ballsBowled int) float64 {
	if ballsFaced <= 0 || ballsBowled <= 0 {
		return 0
	}
	forRate := float64(runsFor) * BallsPerOver / float64(ballsFaced)
	againstRate := float64(runsAgainst) * BallsPerOver / float64(ballsBowled)
	return round3(forRate - againstRate)
}

func round3(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0 // normalise -0
	}
	return r
}
