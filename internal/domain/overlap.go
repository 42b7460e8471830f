package domain

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching endpoints do not intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return bStart.Before(aEnd) && bEnd.After(aStart)
}

// FindOverlap returns the first booking that blocks [start, end), skipping excludeID
// (0 means nothing is excluded) and bookings in overlap-excluded statuses.
func FindOverlap(bookings []*Booking, start, end time.Time, excludeID int64) *Booking {
	for _, b := range bookings {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if !b.BlocksApartments() {
			continue
		}
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			return b
		}
	}
	return nil
}
