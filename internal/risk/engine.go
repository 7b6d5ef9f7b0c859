// Package risk implements the pooled cohort equations: the deterministic
// transform from a validated clinical assessment to a ten-year ASCVD event
// risk percentage.
package risk

import (
	"math"

	"ascvd/pkg/domain"
	"ascvd/pkg/serrors"
)

// fieldRange is one inclusive bound of the accepted input domain. Ranges are
// checked in a fixed order so that the first reported violation is
// deterministic.
type fieldRange struct {
	field string
	value int
	min   int
	max   int
	unit  string
}

// engine is the concrete Engine implementation.
type engine struct{}

// New returns a ready Engine. The engine holds no state; a single instance
// serves any number of concurrent requests.
func New() Engine {
	return engine{}
}

// validate checks every bounded field against its inclusive range and fails
// on the first violation, in field order: age, systolic_bp, diastolic_bp,
// total_cholesterol, hdl, ldl. Values are never coerced or clamped.
func validate(in *domain.Assessment) error {
	ranges := []fieldRange{
		{field: "age", value: in.Age, min: 40, max: 79, unit: "years"},
		{field: "systolic_bp", value: in.SystolicBP, min: 90, max: 200, unit: "mmHg"},
		{field: "diastolic_bp", value: in.DiastolicBP, min: 60, max: 130, unit: "mmHg"},
		{field: "total_cholesterol", value: in.TotalCholesterol, min: 130, max: 320, unit: "mg/dL"},
		{field: "hdl", value: in.HDL, min: 20, max: 100, unit: "mg/dL"},
		{field: "ldl", value: in.LDL, min: 30, max: 300, unit: "mg/dL"},
	}

	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			return serrors.With(serrors.ErrBadRequest,
				"%s must be between %d and %d %s, got %d", r.field, r.min, r.max, r.unit, r.value)
		}
	}

	return nil
}

// Assess validates the assessment and computes its ten-year risk percentage.
// The only possible error is a range violation; for in-range input every log
// and exponentiation below is defined.
func (e engine) Assess(in *domain.Assessment) (domain.RiskResult, error) {
	if err := validate(in); err != nil {
		return domain.RiskResult{}, err
	}

	lnAge := math.Log(float64(in.Age))
	lnTotalChol := math.Log(float64(in.TotalCholesterol))
	lnHDL := math.Log(float64(in.HDL))

	// The model splits the systolic pressure term by treatment status:
	// exactly one of the two terms is non-zero per assessment.
	var treatedLnSBP, untreatedLnSBP float64
	if in.Hypertensive {
		treatedLnSBP = math.Log(float64(in.SystolicBP))
	} else {
		untreatedLnSBP = math.Log(float64(in.SystolicBP))
	}

	var ageSmoker float64
	if in.Smoker {
		ageSmoker = lnAge
	}

	c := coefficientsBySubgroup[in.Subgroup()]

	predict := c.lnAge*lnAge +
		c.lnAgeSquared*lnAge*lnAge +
		c.lnTotalChol*lnTotalChol +
		c.ageTotalChol*lnAge*lnTotalChol +
		c.lnHDL*lnHDL +
		c.ageHDL*lnAge*lnHDL +
		c.treatedLnSBP*treatedLnSBP +
		c.ageTreatedSBP*lnAge*treatedLnSBP +
		c.untreatedLnSBP*untreatedLnSBP +
		c.ageUntreatedSBP*lnAge*untreatedLnSBP +
		c.ageSmoker*ageSmoker

	if in.Smoker {
		predict += c.smoker
	}
	if in.Diabetic {
		predict += c.diabetic
	}

	probability := 1 - math.Pow(c.s010, math.Exp(predict-c.meanXB))

	return domain.RiskResult{
		// per mille, rounded, then back to a one-decimal percentage
		RiskPercent: math.Round(probability*1000) / 10,
	}, nil
}
