package models

import "strings"

// StatusClass buckets vendor status strings for display and counting.
type StatusClass int

const (
	// StatusNeutral is any status without a known health meaning.
	StatusNeutral StatusClass = iota
	// StatusGood covers approved/active/registered/completed statuses.
	StatusGood
	// StatusPending covers in-flight review statuses.
	StatusPending
	// StatusBad covers failed/rejected/denied/suspended statuses.
	StatusBad
)

// ClassifyStatus maps a free-form vendor status to its class.
// Unknown and empty statuses are neutral.
func ClassifyStatus(status string) StatusClass {
	switch strings.ToUpper(status) {
	case "APPROVED", "TWILIO-APPROVED", "ACTIVE", "REGISTERED", "COMPLETED":
		return StatusGood
	case "PENDING", "PENDING_REVIEW", "IN_REVIEW", "IN-REVIEW", "SUBMITTED", "DRAFT":
		return StatusPending
	case "FAILED", "REJECTED", "TWILIO-REJECTED", "DENIED", "SUSPENDED":
		return StatusBad
	default:
		if strings.Contains(strings.ToUpper(status), "REJECTED") {
			return StatusBad
		}
		return StatusNeutral
	}
}

// IsApproved reports whether a profile status counts toward the health score.
func IsApproved(status string) bool {
	return strings.ToUpper(status) == "TWILIO-APPROVED"
}

// IsRejected reports whether a profile status needs attention.
func IsRejected(status string) bool {
	return strings.Contains(strings.ToUpper(status), "REJECTED")
}
