package models

// TriageCategory represents the clinical severity classification of a visit
type TriageCategory string

const (
	TriageResuscitation TriageCategory = "Resuscitation"
	TriageEmergency     TriageCategory = "Emergency"
	TriageUrgency       TriageCategory = "Urgency"
	TriageSemiUrgency   TriageCategory = "Semi-Urgency"
	TriageNonUrgency    TriageCategory = "Non-Urgency"
	TriageUnknown       TriageCategory = "Unknown"
)

// TriageOrder is the canonical row order for every output: clinical severity
// descending, with Unknown last. Replaces database-side FIELD() collation.
var TriageOrder = []TriageCategory{
	TriageResuscitation,
	TriageEmergency,
	TriageUrgency,
	TriageSemiUrgency,
	TriageNonUrgency,
	TriageUnknown,
}

// ClassifyTriage maps a raw triage level code to its category. The mapping is
// total: a nil or unrecognized code classifies as Unknown, never dropped.
func ClassifyTriage(level *int16) TriageCategory {
	if level == nil {
		return TriageUnknown
	}
	switch *level {
	case 1:
		return TriageResuscitation
	case 2:
		return TriageEmergency
	case 3:
		return TriageUrgency
	case 4:
		return TriageSemiUrgency
	case 5:
		return TriageNonUrgency
	default:
		return TriageUnknown
	}
}
