package economy

import (
	"math"

	"github.com/lixenwraith/gravity-ship/parameter"
)

// ScoreFromDistance converts path length into score
func ScoreFromDistance(distance float64) float64 {
	return distance / parameter.DistancePerPoint
}

// CoinsForScore is the number of full coin bands contained in score
func CoinsForScore(score float64) int {
	if score <= 0 {
		return 0
	}
	return int(math.Floor(score / parameter.PointsPerCoin))
}
