package domain

import "time"

// AlertSeverity grades a security alert.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

var alertSeverities = []string{
	string(SeverityLow),
	string(SeverityMedium),
	string(SeverityHigh),
	string(SeverityCritical),
}

func (s AlertSeverity) Valid() bool { return contains(alertSeverities, string(s)) }

// Alert is a recorded security event. ResolvedAt is set if and only if Resolved is true.
type Alert struct {
	ID              string        `json:"id" bson:"id"`
	Title           string        `json:"title" bson:"title"`
	Description     string        `json:"description" bson:"description"`
	Severity        AlertSeverity `json:"severity" bson:"severity"`
	SourceIP        string        `json:"source_ip" bson:"source_ip"`
	Destination     string        `json:"destination" bson:"destination"`
	PolicyTriggered *string       `json:"policy_triggered" bson:"policy_triggered"`
	DeviceID        *string       `json:"device_id" bson:"device_id"`
	Resolved        bool          `json:"resolved" bson:"resolved"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	ResolvedAt      *time.Time    `json:"resolved_at" bson:"resolved_at"`
}

// AlertCreateRequest is the payload accepted by POST /api/alerts.
type AlertCreateRequest struct {
	Title           *string       `json:"title" binding:"required" example:"Malware Detection"`
	Description     *string       `json:"description" binding:"required" example:"Potential malware detected"`
	Severity        AlertSeverity `json:"severity" binding:"required" example:"high"`
	SourceIP        *string       `json:"source_ip" binding:"required" example:"192.168.100.23"`
	Destination     *string       `json:"destination" binding:"required" example:"suspicious-site.com"`
	PolicyTriggered *string       `json:"policy_triggered"`
	DeviceID        *string       `json:"device_id"`
}

func (r AlertCreateRequest) Validate() error {
	switch {
	case r.Title == nil:
		return requiredError("title")
	case r.Description == nil:
		return requiredError("description")
	case r.Severity == "":
		return requiredError("severity")
	case r.SourceIP == nil:
		return requiredError("source_ip")
	case r.Destination == nil:
		return requiredError("destination")
	}
	if !r.Severity.Valid() {
		return enumError("severity", string(r.Severity), alertSeverities)
	}
	return nil
}

// NewAlert returns an unresolved alert for the request.
func (r AlertCreateRequest) NewAlert() Alert {
	return Alert{
		Title:           deref(r.Title),
		Description:     deref(r.Description),
		Severity:        r.Severity,
		SourceIP:        deref(r.SourceIP),
		Destination:     deref(r.Destination),
		PolicyTriggered: r.PolicyTriggered,
		DeviceID:        r.DeviceID,
	}
}
