package models

// DayStatus is the graded completion level for a single day.
type DayStatus int

const (
	StatusNone   DayStatus = iota // data exists, nothing done
	StatusLow                     // 0 < ratio <= 25%
	StatusMedium                  // 25% < ratio <= 50%
	StatusHigh                    // 50% < ratio <= 75%
	StatusFull                    // 75% < ratio <= 100%
)

func (s DayStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusLow:
		return "low"
	case StatusMedium:
		return "medium"
	case StatusHigh:
		return "high"
	case StatusFull:
		return "full"
	default:
		return "unknown"
	}
}
