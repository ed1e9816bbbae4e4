package delivery

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Grades accepted by NewRating, inclusive.
const (
	MinGrade = 1
	MaxGrade = 5
)

var (
	// ErrRatingIsNotConstructed is returned by Validate for zero-value ratings.
	ErrRatingIsNotConstructed = errors.New("rating must be created via NewRating")
	// ErrRatingNotFound identifies the missing entity when an order was never rated.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrDeliveryIsNotDelivered is returned when a rating targets an order that has not
	// reached DELIVERED.
	ErrDeliveryIsNotDelivered = errors.New("only delivered orders can be rated")
)

// Rating is the customer's grade of a finished delivery, from MinGrade to MaxGrade, with
// an optional free-form comment.
type Rating struct {
	grade   int
	comment string
	guard   guard.ConstructorGuard
}

// NewRating validates the grade.
//
// Example:
//
//	r, err := delivery.NewRating(5, "on time")
//	if err != nil {
//	    return err // errs.ErrValueIsOutOfRange for grades outside 1..5
//	}
func NewRating(grade int, comment string) (Rating, error) {
	if grade < MinGrade || grade > MaxGrade {
		return Rating{}, errs.NewValueIsOutOfRangeError("grade", grade, MinGrade, MaxGrade)
	}
	return Rating{
		grade:   grade,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the rating was created through NewRating.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// Grade returns a value between MinGrade and MaxGrade.
func (r Rating) Grade() int {
	return r.grade
}

// Comment may be empty.
func (r Rating) Comment() string {
	return r.comment
}
