package routing

const (
	OUTCOME_FOUND       = "found"
	OUTCOME_UNREACHABLE = "unreachable"
	OUTCOME_REJECTED    = "rejected"
	OUTCOME_ABORTED     = "aborted"

	HEAP_ARITY = 4
)
