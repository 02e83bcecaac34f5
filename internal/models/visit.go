package models

type VisitType string

const (
	VisitPreventive            VisitType = "preventive"
	VisitCorrectiveTechnical   VisitType = "corrective_technical"
	VisitCorrectiveOperational VisitType = "corrective_operational"
)

type VisitStatus string

const (
	VisitPending    VisitStatus = "pending"
	VisitInProgress VisitStatus = "in_progress"
	VisitCompleted  VisitStatus = "completed"
	VisitCancelled  VisitStatus = "cancelled"
)

type Visit struct {
	ID            string      `json:"id"`
	ClientID      string      `json:"clientId"`
	Client        Client      `json:"client"`
	Equipment     Equipment   `json:"equipment"`
	Type          VisitType   `json:"type"`
	ScheduledDate string      `json:"scheduledDate"` // YYYY-MM-DD
	ScheduledTime string      `json:"scheduledTime"` // HH:MM
	Status        VisitStatus `json:"status"`
	TechnicianID  string      `json:"technicianId"`
}

// CanTransition описывает допустимый граф переходов статуса:
// pending → in_progress → completed, отмена возможна из любого статуса.
func (s VisitStatus) CanTransition(to VisitStatus) bool {
	if to == VisitCancelled {
		return s != VisitCancelled
	}
	switch s {
	case VisitPending:
		return to == VisitInProgress
	case VisitInProgress:
		return to == VisitCompleted
	default:
		return false
	}
}
