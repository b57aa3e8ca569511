package suggest

import "github.com/blackwell-systems/ideation/internal/finding"

// EstimateEffort maps a fix cost and the number of affected files to an
// effort label. Rows are checked in order and the first match wins:
//
//	low,    1 file   -> Quick
//	low,    <= 3     -> Short
//	medium, <= 5     -> Medium
//	medium           -> Long
//	anything else    -> Extended
//
// An empty fix cost is treated as medium.
func EstimateEffort(cost finding.FixCost, files int) string {
	if cost == "" {
		cost = finding.FixCostMedium
	}

	switch {
	case cost == finding.FixCostLow && files == 1:
		return EffortQuick
	case cost == finding.FixCostLow && files <= 3:
		return EffortShort
	case cost == finding.FixCostMedium && files <= 5:
		return EffortMedium
	case cost == finding.FixCostMedium:
		return EffortLong
	default:
		return EffortExtended
	}
}
