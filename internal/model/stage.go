package model

// Stage is the coarse growth label derived from lifetime points.
type Stage string

const (
	StageSeed    Stage = "seed"
	StageSprout  Stage = "sprout"
	StageSapling Stage = "sapling"
	StageBigTree Stage = "big"
)

// Stage thresholds are closed ascending ranges; a boundary value belongs to
// the lower stage (5 points is still a seed, 6 is a sprout).
const (
	seedMax    = 5
	sproutMax  = 10
	saplingMax = 20
)

// StageForPoints maps lifetime points to the growth stage.
func StageForPoints(points int) Stage {
	switch {
	case points <= seedMax:
		return StageSeed
	case points <= sproutMax:
		return StageSprout
	case points <= saplingMax:
		return StageSapling
	default:
		return StageBigTree
	}
}

// ProgressToNextStage returns the current stage and the points value at
// which the next stage begins. ok is false at the final stage, where there
// is no further threshold.
func ProgressToNextStage(points int) (current Stage, nextThreshold int, ok bool) {
	current = StageForPoints(points)
	switch current {
	case StageSeed:
		return current, seedMax + 1, true
	case StageSprout:
		return current, sproutMax + 1, true
	case StageSapling:
		return current, saplingMax + 1, true
	default:
		return current, 0, false
	}
}

// WaterCost is the hand-authored price table for advancing a tree out of
// the given display stage. A fully grown tree cannot be watered.
func WaterCost(displayStage int) int {
	switch displayStage {
	case 1, 2:
		return 5
	case 3:
		return 9
	default:
		return 0
	}
}

// RewardPoints is the point value of one confirmed submission in the given
// category. Waste earns nothing but is still tallied as a submission.
func RewardPoints(category Category) int {
	if category == CategoryWaste {
		return 0
	}
	return 5
}
