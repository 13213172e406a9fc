// Package schema checks the shape of scoring inputs and the invariants of
// scoring output.
package schema

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dshills/careeriq/internal/mission"
	"github.com/dshills/careeriq/internal/report"
	"github.com/dshills/careeriq/internal/snapshot"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateSnapshot checks every item for required fields and known enum
// values, and rejects duplicate item IDs.
func ValidateSnapshot(s *snapshot.Snapshot) []ValidationError {
	errs := structErrors(s)

	seen := make(map[string]bool)
	for i, it := range s.Items {
		if it.ID == "" {
			continue
		}
		if seen[it.ID] {
			errs = append(errs, ValidationError{fmt.Sprintf("items[%d].id", i), fmt.Sprintf("duplicate ID: %q", it.ID)})
		}
		seen[it.ID] = true
	}
	return errs
}

// ValidateOpportunities checks that counts are non-negative and the score is in range.
func ValidateOpportunities(o mission.Opportunities) []ValidationError {
	return structErrors(o)
}

// ValidateReport re-checks the invariants a report must satisfy: score range,
// strength threshold consistency, the ROI formula, and mission order.
func ValidateReport(r *report.Report) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	s := r.Strength
	if s.OverallScore < 0 || s.OverallScore > 100 {
		errs = append(errs, ValidationError{"strength.overall_score", fmt.Sprintf("out of range: %d", s.OverallScore)})
	}
	// An empty vault is never strong enough, whatever the minimum.
	want := s.TotalItems > 0 && s.OverallScore >= r.Thresholds.MinimumScore
	if s.IsStrongEnough != want {
		errs = append(errs, ValidationError{"strength.is_strong_enough", fmt.Sprintf("expected %t for score %d and minimum %d", want, s.OverallScore, r.Thresholds.MinimumScore)})
	}
	if s.TotalItems == 0 && (len(s.Gaps) != 1 || s.Gaps[0].Category != "all") {
		errs = append(errs, ValidationError{"strength.gaps", "empty vault must report a single \"all\" gap"})
	}

	ids := make(map[mission.ID]bool)
	for i, m := range r.Missions {
		prefix := fmt.Sprintf("missions[%d]", i)
		if m.ID == "" {
			errs = append(errs, ValidationError{prefix + ".id", "required"})
		} else if ids[m.ID] {
			errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", m.ID)})
		} else {
			ids[m.ID] = true
		}
		if !m.Priority.Valid() {
			errs = append(errs, ValidationError{prefix + ".priority", fmt.Sprintf("invalid: %q", m.Priority)})
		}
		if m.Title == "" {
			errs = append(errs, ValidationError{prefix + ".title", "required"})
		}
		if want := mission.ROI(m.ImpactPoints, m.EffortMinutes); math.Abs(m.ROI-want) > 1e-9 {
			errs = append(errs, ValidationError{prefix + ".roi", fmt.Sprintf("roi %.4f does not match computed %.4f", m.ROI, want)})
		}
		if i == 0 {
			continue
		}
		prev := r.Missions[i-1]
		switch {
		case prev.Priority.Order() > m.Priority.Order():
			errs = append(errs, ValidationError{prefix + ".priority", fmt.Sprintf("%s sorted after %s", m.Priority, prev.Priority)})
		case prev.Priority == m.Priority && prev.ROI < m.ROI:
			errs = append(errs, ValidationError{prefix + ".roi", fmt.Sprintf("roi %.2f sorted after lower roi %.2f", m.ROI, prev.ROI)})
		}
	}
	return errs
}

func structErrors(v any) []ValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Path: "", Message: err.Error()}}
	}
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Path: fieldPath(fe.Namespace()), Message: describe(fe)})
	}
	return out
}

// fieldPath drops the root type name: "Snapshot.Items[0].Tier" becomes "Items[0].Tier".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("invalid: %q (want one of %s)", fmt.Sprint(fe.Value()), fe.Param())
	case "min":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
