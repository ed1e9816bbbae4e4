package delivery

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrIssueIsNotConstructed is returned by Validate for zero-value issues.
var ErrIssueIsNotConstructed = errors.New("issue must be created via NewIssue")

// Issue is a problem reported on a delivery, such as a damaged package or a wrong address.
type Issue struct {
	kind        string
	description string
	guard       guard.ConstructorGuard
}

// NewIssue trims the type and requires it to be non-empty. The description is kept
// verbatim and may be empty.
//
// Example:
//
//	issue, err := delivery.NewIssue("damaged", "box arrived wet")
//	if err != nil {
//	    return err // errs.ErrValueIsRequired for a blank type
//	}
//	err = d.ReportIssue(issue)
func NewIssue(kind string, description string) (Issue, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return Issue{}, errs.NewValueIsRequiredError("issue type")
	}
	return Issue{
		kind:        kind,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the issue was created through NewIssue.
func (i Issue) Validate() error {
	return i.guard.Validate(ErrIssueIsNotConstructed)
}

// Type returns the trimmed issue kind, for example "late" or "damaged".
func (i Issue) Type() string {
	return i.kind
}

// Description returns the free-form details, empty when none were given.
func (i Issue) Description() string {
	return i.description
}
