package shift

import "errors"

var (
	// ErrNotAssigned rejects attendance for a profile that is not on the
	// project's crew list.
	ErrNotAssigned = errors.New("crew profile is not assigned to this project")

	// ErrInvalidDuration rejects non-positive durations or ones that are
	// not quarter-shift increments.
	ErrInvalidDuration = errors.New("shift duration must be a positive multiple of 0.25")

	// ErrInvalidDate rejects dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("shift date must be in YYYY-MM-DD format")

	// ErrDuplicateShift rejects a second shift for the same profile,
	// project and date.
	ErrDuplicateShift = errors.New("a shift already exists for this crew profile, project and date")

	// ErrPaidExceedsEarned rejects an edit that would shrink the earned
	// amount below what has already been paid out.
	ErrPaidExceedsEarned = errors.New("earned amount cannot fall below the amount already paid")
)
