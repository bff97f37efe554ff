package model

// Priority is a task's urgency. The remote service speaks integer
// levels 1 (none) through 4 (most urgent); the outline speaks priority
// cookies [#C], [#B], [#A].
type Priority int

const (
	PriorityNone Priority = iota
	PriorityC
	PriorityB
	PriorityA
)

// PriorityFromLevel maps a remote priority level to a Priority. Levels
// outside 2..4, including the remote default of 1, map to PriorityNone.
func PriorityFromLevel(level int) Priority {
	switch level {
	case 4:
		return PriorityA
	case 3:
		return PriorityB
	case 2:
		return PriorityC
	default:
		return PriorityNone
	}
}

// Level is the inverse of PriorityFromLevel.
func (p Priority) Level() int {
	switch p {
	case PriorityA:
		return 4
	case PriorityB:
		return 3
	case PriorityC:
		return 2
	default:
		return 1
	}
}

// Cookie returns the outline priority letter ("A", "B" or "C"), or the
// empty string for PriorityNone.
func (p Priority) Cookie() string {
	switch p {
	case PriorityA:
		return "A"
	case PriorityB:
		return "B"
	case PriorityC:
		return "C"
	default:
		return ""
	}
}

// PriorityFromCookie maps an outline priority letter back to a
// Priority. Anything but "A", "B" or "C" is PriorityNone.
func PriorityFromCookie(s string) Priority {
	switch s {
	case "A":
		return PriorityA
	case "B":
		return PriorityB
	case "C":
		return PriorityC
	default:
		return PriorityNone
	}
}
