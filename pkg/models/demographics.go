package models

// Gender represents the biological sex recorded for a patient
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// GenderFromCode maps the store's sex code to a Gender. There is no unknown
// bucket in the output bins, so GenderUnknown rows are skipped by counting.
func GenderFromCode(code *string) Gender {
	if code == nil {
		return GenderUnknown
	}
	switch *code {
	case "1":
		return GenderMale
	case "2":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// AgeBand represents one of the three demographic age bands
type AgeBand string

const (
	AgeBandChild   AgeBand = "child"
	AgeBandAdult   AgeBand = "adult"
	AgeBandElderly AgeBand = "elderly"
)

// AgeBandOf classifies an age in whole years: child <15, adult 15-59,
// elderly >=60.
func AgeBandOf(age int) AgeBand {
	switch {
	case age < 15:
		return AgeBandChild
	case age < 60:
		return AgeBandAdult
	default:
		return AgeBandElderly
	}
}
