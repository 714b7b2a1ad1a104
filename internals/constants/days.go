package constants

// Teaching days. Session derivation and timetable validation only accept
// these exact names; matching is case-sensitive.
var TeachingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func IsTeachingDay(day string) bool {
	for _, d := range TeachingDays {
		if d == day {
			return true
		}
	}
	return false
}
