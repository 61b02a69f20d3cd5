package economy

// Level curve
const (
	XPBase     = 100
	XPPerLevel = 50
)
