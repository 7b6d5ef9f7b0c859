package risk

import (
	"ascvd/pkg/domain"
)

// coefficients is one fitted coefficient set of the pooled cohort equations.
// A zero coefficient means the subgroup's published model omits that term;
// the female cohorts carry the squared-age and age-by-smoker terms, the male
// cohorts do not, and that asymmetry is part of the model.
type coefficients struct {
	// s010 is the baseline ten-year survival probability of the cohort.
	s010 float64
	// meanXB is the cohort mean of the linear predictor, subtracted before
	// exponentiation.
	meanXB float64

	lnAge           float64
	lnAgeSquared    float64
	lnTotalChol     float64
	ageTotalChol    float64
	lnHDL           float64
	ageHDL          float64
	treatedLnSBP    float64
	ageTreatedSBP   float64
	untreatedLnSBP  float64
	ageUntreatedSBP float64
	smoker          float64
	ageSmoker       float64
	diabetic        float64
}

// coefficientsBySubgroup holds the four published coefficient sets, keyed by
// the race-and-sex cohort. It is read-only process-wide data.
var coefficientsBySubgroup = map[domain.Subgroup]coefficients{ //nolint: gochecknoglobals
	domain.SubgroupBlackFemale: {
		s010:            0.95334,
		meanXB:          86.6081,
		lnAge:           17.1141,
		lnTotalChol:     0.9396,
		lnHDL:           -18.9196,
		ageHDL:          4.4748,
		treatedLnSBP:    29.2907,
		ageTreatedSBP:   -6.4321,
		untreatedLnSBP:  27.8197,
		ageUntreatedSBP: -6.0873,
		smoker:          0.6908,
		diabetic:        0.8738,
	},
	domain.SubgroupNonBlackFemale: {
		s010:           0.96652,
		meanXB:         -29.1817,
		lnAge:          -29.799,
		lnAgeSquared:   4.884,
		lnTotalChol:    13.54,
		ageTotalChol:   -3.114,
		lnHDL:          -13.578,
		ageHDL:         3.149,
		treatedLnSBP:   2.019,
		untreatedLnSBP: 1.957,
		smoker:         7.574,
		ageSmoker:      -1.665,
		diabetic:       0.661,
	},
	domain.SubgroupBlackMale: {
		s010:           0.89536,
		meanXB:         19.5425,
		lnAge:          2.469,
		lnTotalChol:    0.302,
		lnHDL:          -0.307,
		treatedLnSBP:   1.916,
		untreatedLnSBP: 1.809,
		smoker:         0.549,
		diabetic:       0.645,
	},
	domain.SubgroupNonBlackMale: {
		s010:           0.91436,
		meanXB:         61.1816,
		lnAge:          12.344,
		lnTotalChol:    11.853,
		ageTotalChol:   -2.664,
		lnHDL:          -7.99,
		ageHDL:         1.769,
		treatedLnSBP:   1.797,
		untreatedLnSBP: 1.764,
		smoker:         7.837,
		ageSmoker:      -1.795,
		diabetic:       0.658,
	},
}
