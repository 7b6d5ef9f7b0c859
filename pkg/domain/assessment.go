package domain

// Assessment is the clinical profile a risk computation runs against. It is a
// value object: constructed once per request, never mutated and never stored.
type Assessment struct {
	// IsMale selects the male coefficient sets of the pooled cohort equations.
	IsMale bool `json:"is_male"`
	// IsBlack selects the African-American coefficient sets.
	IsBlack bool `json:"is_black"`
	// Smoker indicates current tobacco use.
	Smoker bool `json:"smoker"`
	// Hypertensive indicates the patient is on blood-pressure treatment,
	// which switches the systolic term between its treated and untreated form.
	Hypertensive bool `json:"hypertensive"`
	// Diabetic indicates a diabetes diagnosis.
	Diabetic bool `json:"diabetic"`

	// Age in years, accepted range [40, 79].
	Age int `json:"age"`
	// SystolicBP in mmHg, accepted range [90, 200].
	SystolicBP int `json:"systolic_bp"`
	// DiastolicBP in mmHg, accepted range [60, 130]. Validated but not used
	// by the ten-year risk formula.
	DiastolicBP int `json:"diastolic_bp"`
	// TotalCholesterol in mg/dL, accepted range [130, 320].
	TotalCholesterol int `json:"total_cholesterol"`
	// HDL cholesterol in mg/dL, accepted range [20, 100].
	HDL int `json:"hdl"`
	// LDL cholesterol in mg/dL, accepted range [30, 300]. Validated but not
	// used by the ten-year risk formula.
	LDL int `json:"ldl"`
}

// Subgroup identifies one of the four race-and-sex cohorts that the pooled
// cohort equations fit independent coefficient sets for.
type Subgroup int

const (
	// SubgroupBlackFemale is the African-American women cohort.
	SubgroupBlackFemale Subgroup = iota
	// SubgroupNonBlackFemale is the white and other women cohort.
	SubgroupNonBlackFemale
	// SubgroupBlackMale is the African-American men cohort.
	SubgroupBlackMale
	// SubgroupNonBlackMale is the white and other men cohort.
	SubgroupNonBlackMale
)

// String returns the cohort name used in logs.
func (s Subgroup) String() string {
	switch s {
	case SubgroupBlackFemale:
		return "black_female"
	case SubgroupNonBlackFemale:
		return "non_black_female"
	case SubgroupBlackMale:
		return "black_male"
	case SubgroupNonBlackMale:
		return "non_black_male"
	default:
		return "unknown"
	}
}

// SubgroupOf maps the demographic flags of an assessment to its cohort.
func SubgroupOf(isBlack, isMale bool) Subgroup {
	switch {
	case isBlack && !isMale:
		return SubgroupBlackFemale
	case !isBlack && !isMale:
		return SubgroupNonBlackFemale
	case isBlack && isMale:
		return SubgroupBlackMale
	default:
		return SubgroupNonBlackMale
	}
}

// Subgroup returns the cohort the assessment belongs to.
func (a *Assessment) Subgroup() Subgroup {
	return SubgroupOf(a.IsBlack, a.IsMale)
}

// RiskResult is the outcome of a risk computation: the ten-year ASCVD event
// probability expressed as a percentage rounded to one decimal place.
type RiskResult struct {
	RiskPercent float64 `json:"ascvd_risk"`
}
