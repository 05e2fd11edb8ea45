package engine

import (
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

// EstimateInput contains the party and encounter snapshot to evaluate.
// Party must be non-empty; callers handle the empty-party sentinel
// before reaching an estimator.
type EstimateInput struct {
	Party     []*entities.Character
	Encounter *entities.Encounter
}

// EstimateOutput contains the estimated success chance
type EstimateOutput struct {
	SuccessChance int32
}
