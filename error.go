package clock

import "fmt"

type constError string

// ErrInvalidCapacity is returned from [New]
// when asked for fewer than [MinimumCapacity] slots.
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

// minCapacityError rejects rings that could never
// hold an entry; sweeping one would not terminate.
func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: a ring needs at least %d slot(s), got %d",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}
