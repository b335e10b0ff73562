package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput         = 10
	PriorityGameplayState = 20
)
