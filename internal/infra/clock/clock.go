// Package clock provides the wall clock used for loan dates.
package clock

import (
	"time"

	"library/config"
	"library/internal/domain/entity"
	"library/internal/domain/service"

	"github.com/pkg/errors"
)

type zonedClock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock reading system time in the configured loan time zone.
func New(cfg *config.Config) (service.Clock, error) {
	name := "UTC"
	if cfg.Loan != nil && cfg.Loan.Timezone != "" {
		name = cfg.Loan.Timezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load time zone %q", name)
	}

	return &zonedClock{loc: loc, now: time.Now}, nil
}

// Fixed returns a clock frozen at t. The calendar date is taken in t's location.
func Fixed(t time.Time) service.Clock {
	return &zonedClock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c *zonedClock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *zonedClock) Today() time.Time {
	return entity.DateOf(c.Now())
}
