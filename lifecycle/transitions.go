package lifecycle

import "foodie-api/models"

// Transition is one edge of the intended happy-path sequence.
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// intendedTransitions is the documented sequence an order is expected to
// follow. Status advancement does not enforce these edges (see CanAdvance);
// they are published on the state-machine info endpoint for clients.
var intendedTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered},
	{From: models.StatusPending, To: models.StatusCancelled},
}

// IntendedTransitions returns the full documented state graph.
func IntendedTransitions() []Transition {
	return intendedTransitions
}

// NextStates returns the documented next states from a given state.
func NextStates(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range intendedTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// TerminalStates returns the states from which no change is allowed.
func TerminalStates() []models.OrderStatus {
	return []models.OrderStatus{models.StatusDelivered, models.StatusCancelled}
}
