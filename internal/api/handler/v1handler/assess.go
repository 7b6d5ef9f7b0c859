package v1handler

import (
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"ascvd/pkg/domain"
	"ascvd/pkg/serrors"
)

// maxBodyBytes caps the request body; a valid assessment is a few hundred
// bytes at most.
const maxBodyBytes = 1 << 16

// assessmentFields lists every required request field, in wire order.
var assessmentFields = []string{ //nolint: gochecknoglobals
	"is_male", "is_black", "smoker", "hypertensive", "diabetic",
	"age", "systolic_bp", "diastolic_bp", "total_cholesterol", "hdl", "ldl",
}

// decodeAssessment parses the request body into an Assessment. Every field is
// required and strictly typed; a missing field, a mistyped value or malformed
// JSON yields an ErrUnprocessable naming the field, so the schema tier stays
// distinct from the engine's range validation.
func decodeAssessment(data []byte) (*domain.Assessment, error) {
	var (
		a    domain.Assessment
		seen = make(map[string]bool, len(assessmentFields))
	)

	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		seen[key] = true

		var err error
		switch key {
		case "is_male":
			a.IsMale, err = d.Bool()
		case "is_black":
			a.IsBlack, err = d.Bool()
		case "smoker":
			a.Smoker, err = d.Bool()
		case "hypertensive":
			a.Hypertensive, err = d.Bool()
		case "diabetic":
			a.Diabetic, err = d.Bool()
		case "age":
			a.Age, err = d.Int()
		case "systolic_bp":
			a.SystolicBP, err = d.Int()
		case "diastolic_bp":
			a.DiastolicBP, err = d.Int()
		case "total_cholesterol":
			a.TotalCholesterol, err = d.Int()
		case "hdl":
			a.HDL, err = d.Int()
		case "ldl":
			a.LDL, err = d.Int()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}

		return nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnprocessable, err, "invalid request body")
	}

	for _, f := range assessmentFields {
		if !seen[f] {
			return nil, serrors.With(serrors.ErrUnprocessable, "missing required field %q", f)
		}
	}

	return &a, nil
}

// CalculateRisk handles POST /calculate-ascvd-risk: decode, assess, encode.
func (h *Handler) CalculateRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	status := http.StatusOK
	defer func() {
		h.observe(ctx, "calculate-ascvd-risk", status, time.Since(start).Seconds())
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		status = writeError(ctx, w, serrors.Wrap(serrors.ErrUnprocessable, err, "could not read request body"))

		return
	}

	assessment, err := decodeAssessment(body)
	if err != nil {
		status = writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Engine.Assess(assessment)
	if err != nil {
		status = writeError(ctx, w, err)

		return
	}

	writeRisk(w, res.RiskPercent)
}
