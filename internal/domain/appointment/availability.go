package appointment

import "time"

type AvailabilityInput struct {
	ServiceID uint
	Date      time.Time
}
