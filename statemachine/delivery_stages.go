package statemachine

import "food-delivery-app/models"

// Stage describes one step of the delivery progression shown on the
// tracking screen. The progression is informational: it is rendered
// from these precomputed entries, not driven by live driver events.
type Stage struct {
	Status      models.OrderStatus `json:"status"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
}

// stages is the authoritative delivery progression, in order.
var stages = []Stage{
	{Status: models.StatusPlaced, Label: "Order Placed", Description: "The restaurant has received your order"},
	{Status: models.StatusPreparing, Label: "Preparing", Description: "Your food is being prepared"},
	{Status: models.StatusOnTheWay, Label: "On The Way", Description: "Your driver is heading to you"},
	{Status: models.StatusDelivered, Label: "Delivered", Description: "Enjoy your meal"},
}

// Build a position lookup for O(1) stage queries
var stageIndex = func() map[models.OrderStatus]int {
	m := make(map[models.OrderStatus]int, len(stages))
	for i, s := range stages {
		m[s.Status] = i
	}
	return m
}()

// AllStages returns the full progression for documentation and the
// tracking display.
func AllStages() []Stage {
	return stages
}

// NextStage returns the stage after the given status, if any.
func NextStage(status models.OrderStatus) (Stage, bool) {
	i, ok := stageIndex[status]
	if !ok || i+1 >= len(stages) {
		return Stage{}, false
	}
	return stages[i+1], true
}

// IsTerminal reports whether the status is the end of the
// progression.
func IsTerminal(status models.OrderStatus) bool {
	i, ok := stageIndex[status]
	return ok && i == len(stages)-1
}

// Reached reports whether a given stage has been passed (or is
// current) relative to the order's status. The tracking screen uses
// this to tick off completed steps.
func Reached(current, stage models.OrderStatus) bool {
	ci, ok1 := stageIndex[current]
	si, ok2 := stageIndex[stage]
	return ok1 && ok2 && si <= ci
}
