package domain

import "time"

// LeadStatus represents the status of a captured lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
)

// Lead заявка с маркетингового сайта (форма, чат-бот, лендинг)
type Lead struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Message     string
	Source      string
	Status      LeadStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ParseLeadStatus валидирует строковый статус заявки
func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted:
		return LeadStatus(s), true
	default:
		return "", false
	}
}
