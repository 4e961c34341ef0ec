// Package models defines the domain models for the ER visit statistics service
package models

import (
	"time"
)

// VisitRecord represents one emergency-department encounter as stored by the
// upstream hospital information system. The engine only ever reads these.
type VisitRecord struct {
	VN            string     `json:"vn" db:"vn"`
	HN            *string    `json:"hn,omitempty" db:"hn"`
	VisitDate     time.Time  `json:"visit_date" db:"visit_date"`
	VisitTime     time.Time  `json:"visit_time" db:"visit_time"`
	DepartureTime *time.Time `json:"departure_time,omitempty" db:"departure_time"`
	TriageLevel   *int16     `json:"triage_level,omitempty" db:"triage_level"`
	LeaveStatus   *int16     `json:"leave_status,omitempty" db:"leave_status"`
	ShiftPeriod   *string    `json:"shift_period,omitempty" db:"shift_period"`
	PatientType   *int16     `json:"patient_type,omitempty" db:"patient_type"`
	Symptom       *string    `json:"symptom,omitempty" db:"symptom"`
}

// PatientDemographic is the read-through view of the patient attributes the
// engine needs. Age is derived from BirthDate at query time, never stored.
type PatientDemographic struct {
	HN        string     `json:"hn" db:"hn"`
	FirstName *string    `json:"first_name,omitempty" db:"first_name"`
	LastName  *string    `json:"last_name,omitempty" db:"last_name"`
	SexCode   *string    `json:"sex_code,omitempty" db:"sex_code"`
	BirthDate *time.Time `json:"birth_date,omitempty" db:"birth_date"`
}

// HealthStatus represents service health
type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ProblemDetails represents RFC 7807 Problem Details
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}
