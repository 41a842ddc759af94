package finance

import (
	"sort"

	"crewledger/models"
)

type direction int

const (
	opApply direction = iota
	opReverse
)

// distribute spreads amount across shifts oldest-date-first and returns the
// shifts whose paidAmount changed, with status recomputed. It does not touch
// the input slice's payment fields and it does not persist anything.
//
// Oldest-first is deliberate: the earliest outstanding shifts are settled
// before later ones, which is the order crews expect on reports.
//
// The function does not validate that the shifts can absorb the full amount.
// The coordinator checks the aggregate balance before calling apply; if that
// check were bypassed, allocation would simply stop when shifts run out.
func distribute(shifts []models.Shift, amount float64, dir direction) []models.Shift {
	ordered := make([]models.Shift, len(shifts))
	copy(ordered, shifts)
	sort.SliceStable(ordered, func(i, j int) bool {
		// Dates are "YYYY-MM-DD", so string order is chronological.
		return ordered[i].Date < ordered[j].Date
	})

	remaining := amount
	var changed []models.Shift

	for i := range ordered {
		if remaining <= 0 {
			break
		}
		shift := ordered[i]

		switch dir {
		case opApply:
			balance := shift.EarnedAmount - shift.PaidAmount
			if balance <= 0 {
				continue
			}
			allocated := remaining
			if balance < allocated {
				allocated = balance
			}
			shift.PaidAmount += allocated
			remaining -= allocated

		case opReverse:
			if shift.PaidAmount <= 0 {
				continue
			}
			reversed := remaining
			if shift.PaidAmount < reversed {
				reversed = shift.PaidAmount
			}
			shift.PaidAmount -= reversed
			remaining -= reversed
		}

		shift.Status = Status(shift.EarnedAmount, shift.PaidAmount)
		changed = append(changed, shift)
	}

	return changed
}
