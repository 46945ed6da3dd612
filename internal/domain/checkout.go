package domain

import "time"

// Receipt is the result of a successful checkout. Lines and Total are taken
// from the cart snapshot read before the stock decrement; prices are not
// re-read afterwards.
type Receipt struct {
	OwnerID  string
	Lines    []CartLine
	Total    Money
	PlacedAt time.Time
}
