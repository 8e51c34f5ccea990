package zodiac

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingInput           = errors.New("missing input")
	ErrNonNumericInput        = errors.New("non-numeric input")
	ErrDegenerateDistribution = errors.New("all rarity weights are zero")
	ErrUndefined              = errors.New("formula has no real value for these inputs")
)

// MissingInputError names the stats a calculator needed but did not get.
type MissingInputError struct {
	Op     string
	Fields []Field
}

func (e *MissingInputError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return e.Op + ": missing input: " + strings.Join(names, ", ")
}

func (e *MissingInputError) Is(target error) bool { return target == ErrMissingInput }

// Missing reports whether f is one of the absent fields.
func (e *MissingInputError) Missing(f Field) bool {
	for _, m := range e.Fields {
		if m == f {
			return true
		}
	}
	return false
}

// ParseStat turns user text into a stat value.
// Blank text means "skipped" and yields nil, nil.
func ParseStat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &NonNumericError{Text: s}
	}
	if err := validateStat(v); err != nil {
		return nil, &NonNumericError{Text: s}
	}
	return &v, nil
}

// NonNumericError is returned by ParseStat for text that is not a real number.
type NonNumericError struct {
	Text string
}

func (e *NonNumericError) Error() string {
	return "non-numeric input " + strconv.Quote(e.Text)
}

func (e *NonNumericError) Is(target error) bool { return target == ErrNonNumericInput }

// Infinities are real enough to flow through the formulas; NaN is not.
func validateStat(v float64) error {
	if math.IsNaN(v) {
		return ErrNonNumericInput
	}
	return nil
}

// Validate checks the engine precondition on every provided stat.
func (in StatInput) Validate() error {
	for _, f := range []Field{FieldRarity, FieldQuality, FieldLevel, FieldLuck} {
		if p := in.get(f); p != nil {
			if err := validateStat(*p); err != nil {
				return &NonNumericError{Text: string(f) + "=NaN"}
			}
		}
	}
	return nil
}
