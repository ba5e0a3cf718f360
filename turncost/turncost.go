package turncost

import "github.com/katalvlaran/turnpath/gridgraph"

// Edge returns the cost of leaving a cell while facing from and stepping
// into the neighbour that lies in direction to. Rotations happen in place
// before the step, so the result is Turns(from, to)*TurnPenalty + StepCost.
//
// Edge panics if either heading is not a valid ordinal. The result wraps
// for a model rejected by Validate.
// Complexity: O(1).
func (m Model) Edge(from, to gridgraph.Direction) int64 {
	return int64(gridgraph.Turns(from, to))*m.TurnPenalty + m.StepCost
}

// MaxEdge is the most expensive single move, a 180° reversal plus a step.
// It is below math.MaxInt64 for every model that passes Validate.
func (m Model) MaxEdge() int64 {
	return 2*m.TurnPenalty + m.StepCost
}
