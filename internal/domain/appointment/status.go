package appointment

// ===============================
// Appointment Status
// ===============================

// StatusScheduled is the only status the API guarantees: it is applied when
// a creation request carries no status. Callers may set any other label.
const StatusScheduled = "Scheduled"

// DefaultStatus substitutes the scheduled default for an empty status.
func DefaultStatus(status string) string {
	if status == "" {
		return StatusScheduled
	}
	return status
}
