package domain

// Player is the reference entity for the roster directory.
// Status and Tag are live values, mutable until the day closes
type Player struct {
	ID     string
	Name   string
	Status StatusCode
	Tag    *string
}
