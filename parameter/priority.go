package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityScenario = 10 // Situation and vitals settle before evaluation
	PriorityDecision = 20
)
