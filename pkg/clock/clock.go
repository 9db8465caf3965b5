package clock

import (
	"fmt"
	"time"
)

// Clock источник текущего времени в заданной таймзоне.
type Clock struct {
	loc *time.Location
}

func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", timezone, err)
	}
	return &Clock{loc: loc}, nil
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
