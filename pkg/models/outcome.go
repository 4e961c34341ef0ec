package models

// OutcomeBucket represents the disposition of a visit
type OutcomeBucket string

const (
	OutcomeAdmitted          OutcomeBucket = "admit"
	OutcomeAdmittedOtherWard OutcomeBucket = "admitHW"
	OutcomeReferred          OutcomeBucket = "refer"
	OutcomeDischarged        OutcomeBucket = "dc"
	OutcomeEMSTransport      OutcomeBucket = "ems"
	OutcomeExcluded          OutcomeBucket = "excluded"
)

// CancelledStatusCode is the leave-status code of a cancelled visit. Cancelled
// visits are removed from every count. A nil status is never cancelled.
const CancelledStatusCode int16 = 7

// OutcomeOrder is the canonical column order of the triage x outcome matrix.
// Excluded never appears in output, it only marks rows to drop.
var OutcomeOrder = []OutcomeBucket{
	OutcomeAdmitted,
	OutcomeAdmittedOtherWard,
	OutcomeReferred,
	OutcomeDischarged,
	OutcomeEMSTransport,
}

// ClassifyOutcome maps a raw leave-status code to its outcome bucket. The
// mapping is total and the buckets are mutually exclusive: nil classifies as
// Discharged (a patient who left without a recorded disposition), code 7 as
// Excluded, and any code the store does not use falls back to Discharged.
func ClassifyOutcome(status *int16) OutcomeBucket {
	if status == nil {
		return OutcomeDischarged
	}
	switch *status {
	case 1:
		return OutcomeAdmitted
	case 8:
		return OutcomeAdmittedOtherWard
	case 2, 3:
		return OutcomeReferred
	case 9:
		return OutcomeEMSTransport
	case CancelledStatusCode:
		return OutcomeExcluded
	default:
		return OutcomeDischarged
	}
}
