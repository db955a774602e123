package utils

// Rate calculators over aggregation output. Pure functions; every rate
// is 0 when its denominator is 0, never NaN or Inf.

func ConversionRate(confirmed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return RoundFloat(float64(confirmed)/float64(total)*100, 2)
}

func AttendanceRate(checkedIn, confirmed int64) float64 {
	if confirmed == 0 {
		return 0
	}
	return RoundFloat(float64(checkedIn)/float64(confirmed)*100, 2)
}

func CapacityRate(confirmed int64, maxAttendees int) float64 {
	if maxAttendees <= 0 {
		return 0
	}
	return RoundFloat(float64(confirmed)/float64(maxAttendees)*100, 2)
}

// Presentation tiers. Attendance is judged average from 60%, capacity
// already from 50%; both are good from 80%.

func AttendanceTier(rate float64) string {
	switch {
	case rate >= 80:
		return "good"
	case rate >= 60:
		return "average"
	default:
		return "poor"
	}
}

func CapacityTier(rate float64) string {
	switch {
	case rate >= 80:
		return "good"
	case rate >= 50:
		return "average"
	default:
		return "poor"
	}
}
