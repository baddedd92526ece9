package calendar

import (
	"errors"
	"fmt"
	"time"

	"gametool/models"

	"github.com/robfig/cron/v3"
)

// ErrNoDrawDay is returned when a draw number cannot be placed on the calendar
var ErrNoDrawDay = errors.New("no draw day")

// maxLookbackDays bounds the backward search for the draw preceding a known one
const maxLookbackDays = 512

// Calendar maps draw numbers to days by counting schedule activations from each
// game's anchor draw
type Calendar struct {
	location *time.Location
}

// New creates a calendar evaluating schedules in loc; nil means UTC
func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{location: loc}
}

// DrawDays returns the day holding the given draw of a game
func (c *Calendar) DrawDays(game *models.Game, drawNumber int) ([]models.DrawDay, error) {
	if game == nil {
		return nil, fmt.Errorf("%w: no game", ErrNoDrawDay)
	}

	schedule, err := cron.ParseStandard(game.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q for %s: %w", game.Schedule, game.Name, err)
	}

	// Anchor dates carry no zone; their calendar day is taken as is
	y, m, d := game.AnchorDate.Date()
	anchorDay := time.Date(y, m, d, 0, 0, 0, 0, c.location)
	current := schedule.Next(anchorDay.Add(-time.Nanosecond))
	if current.IsZero() || !c.startOfDay(current).Equal(anchorDay) {
		return nil, fmt.Errorf("%w: anchor date %s of %s has no draw", ErrNoDrawDay, anchorDay.Format(time.DateOnly), game.Name)
	}

	for n := game.AnchorDraw; n < drawNumber; n++ {
		if current = schedule.Next(current); current.IsZero() {
			return nil, fmt.Errorf("%w: %s draw %d is out of range", ErrNoDrawDay, game.Name, drawNumber)
		}
	}
	for n := game.AnchorDraw; n > drawNumber; n-- {
		if current, err = previous(schedule, current); err != nil {
			return nil, fmt.Errorf("%s draw %d: %w", game.Name, drawNumber, err)
		}
	}

	return []models.DrawDay{{DrawNumber: drawNumber, Date: c.startOfDay(current)}}, nil
}

func (c *Calendar) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.location)
}

// previous returns the last activation strictly before t
func previous(schedule cron.Schedule, t time.Time) (time.Time, error) {
	for days := 1; days <= maxLookbackDays; days *= 2 {
		var last time.Time
		for next := schedule.Next(t.AddDate(0, 0, -days)); !next.IsZero() && next.Before(t); next = schedule.Next(next) {
			last = next
		}
		if !last.IsZero() {
			return last, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: nothing scheduled within %d days before %s", ErrNoDrawDay, maxLookbackDays, t.Format(time.DateOnly))
}
