package job

import (
	"fmt"
	"regexp"

	"fieldservice/internal/pkg/errs"
)

// numberPattern matches the canonical job number format JOB-<year>-<seq>,
// e.g. JOB-2026-0042. The sequence is zero-padded to four digits but may grow
// past four once a tenant exceeds 9999 jobs in a year.
var numberPattern = regexp.MustCompile(`^JOB-(\d{4})-(\d{4,})$`)

// Number is the human-readable job identifier, unique per tenant.
type Number struct {
	value string
}

// NewNumber formats a job number from a year and a per-tenant sequence value.
func NewNumber(year, sequence int) (Number, error) {
	if year < 1000 || year > 9999 {
		return Number{}, errs.NewValueIsOutOfRangeError("year", year, 1000, 9999)
	}
	if sequence <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}

	return Number{value: fmt.Sprintf("JOB-%04d-%04d", year, sequence)}, nil
}

// NumberFromString parses a persisted job number, rejecting anything that does
// not match the JOB-<year>-<seq> format.
func NumberFromString(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("job number",
			fmt.Errorf("%q does not match JOB-<year>-<seq>", s))
	}
	return Number{value: s}, nil
}

// String returns the canonical representation, e.g. "JOB-2026-0042".
func (n Number) String() string {
	return n.value
}

// IsEqual compares two job numbers by value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate checks that the number was created via one of the constructors.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("job number")
	}
	return nil
}
