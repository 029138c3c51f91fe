package builder

import "github.com/kingrea/afrofeast/internal/catalog"

// Step is one stage of the guided ordering flow.
type Step int

const (
	StepModeSelection Step = iota
	StepScheduling
	StepStarters
	StepMains
	StepDrinks
	StepSides
	StepConfirmation
	StepPayment
)

// Steps lists the flow in forward order.
var Steps = []Step{
	StepModeSelection, StepScheduling, StepStarters, StepMains,
	StepDrinks, StepSides, StepConfirmation, StepPayment,
}

func (s Step) String() string {
	switch s {
	case StepModeSelection:
		return "MODE_SELECTION"
	case StepScheduling:
		return "SCHEDULING"
	case StepStarters:
		return "STARTERS"
	case StepMains:
		return "MAINS"
	case StepDrinks:
		return "DRINKS"
	case StepSides:
		return "SIDES"
	case StepConfirmation:
		return "CONFIRMATION"
	case StepPayment:
		return "PAYMENT"
	}
	return "UNKNOWN"
}

// Label is the guest-facing name of the step.
func (s Step) Label() string {
	switch s {
	case StepModeSelection:
		return "Experience"
	case StepScheduling:
		return "Logistics"
	case StepStarters:
		return "Beginnings"
	case StepMains:
		return "Signatures"
	case StepDrinks:
		return "Elixirs"
	case StepSides:
		return "Accompaniments"
	case StepConfirmation:
		return "Review"
	case StepPayment:
		return "Checkout"
	}
	return s.String()
}

// Category returns the menu category browsed in a course step.
func (s Step) Category() (catalog.Category, bool) {
	switch s {
	case StepStarters:
		return catalog.Starters, true
	case StepMains:
		return catalog.MainDishes, true
	case StepDrinks:
		return catalog.Drinks, true
	case StepSides:
		return catalog.Sides, true
	}
	return "", false
}
