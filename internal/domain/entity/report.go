package entity

import (
	"time"
)

// Report is a citizen incident report.
type Report struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Slug        string        `bson:"slug" json:"slug"`
	Description string        `bson:"description" json:"description"`
	Status      ReportStatus  `bson:"status" json:"status"`
	Type        ReportType    `bson:"type" json:"type"`
	Images      []string      `bson:"images" json:"images"`
	Videos      []string      `bson:"videos" json:"videos"`
	Location    *GeoPoint     `bson:"location,omitempty" json:"location,omitempty"`
	CreatedBy   string        `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ReportStatus is the triage state of a report.
type ReportStatus string

const (
	ReportStatusPending       ReportStatus = "pending"
	ReportStatusInvestigating ReportStatus = "investigating"
	ReportStatusResolved      ReportStatus = "resolved"
	ReportStatusReject        ReportStatus = "reject"
)

// ValidReportStatus reports whether s is one of the known triage states.
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusPending, ReportStatusInvestigating, ReportStatusResolved, ReportStatusReject:
		return true
	}
	return false
}

// ReportType distinguishes corruption reports from intervention requests.
type ReportType string

const (
	ReportTypeRedFlag      ReportType = "red-flag"
	ReportTypeIntervention ReportType = "intervention"
)

// ValidReportType reports whether t is a known report type.
func ValidReportType(t ReportType) bool {
	return t == ReportTypeRedFlag || t == ReportTypeIntervention
}

// GeoPoint is a GeoJSON point ([lat, long] order as stored by the mobile app).
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}
