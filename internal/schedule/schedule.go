package schedule

import (
	"math/rand"
	"sort"
	"time"
)

// Event is a single synthetic commit planned for a point in time.
type Event struct {
	At      time.Time
	Message string
}

// Options tunes how many events a day receives and in which hours.
type Options struct {
	WeekdayMax     int // upper bound (inclusive) for weekday commit counts
	WeekendMax     int // upper bound (inclusive) for weekend commit counts
	HalveThreshold int // counts above this may be halved by a coin flip
	HourMin        int // earliest commit hour (inclusive)
	HourMax        int // latest commit hour (inclusive)
}

// DefaultOptions returns the tuning used by the stock gardener profile.
func DefaultOptions() Options {
	return Options{
		WeekdayMax:     15,
		WeekendMax:     3,
		HalveThreshold: 5,
		HourMin:        9,
		HourMax:        22,
	}
}

// Generator plans the synthetic events for individual calendar days.
// All randomness flows through the injected rand.Rand, so a seeded source
// yields a reproducible plan.
type Generator struct {
	rnd  *rand.Rand
	pool Pool
	opts Options
}

// NewGenerator creates a generator drawing from rnd and picking messages
// from pool.
func NewGenerator(rnd *rand.Rand, pool Pool, opts Options) *Generator {
	return &Generator{rnd: rnd, pool: pool, opts: opts}
}

// PlanDay decides whether the given calendar day receives events and, if so,
// returns them with pairwise distinct timestamps in ascending order. The
// time component of day is ignored.
func (g *Generator) PlanDay(day time.Time) []Event {
	weekend := IsWeekend(day)

	// Weekend days survive only a fair coin flip. The gate runs before any
	// count is drawn, so a skipped day consumes exactly one draw.
	if weekend && !g.flipCoin() {
		return nil
	}

	count := g.dailyCount(weekend)

	times := g.commitTimes(day, count)
	events := make([]Event, 0, len(times))
	for _, at := range times {
		events = append(events, Event{At: at, Message: g.pool.Pick(g.rnd)})
	}
	return events
}

// dailyCount draws the number of commits for one (non-skipped) day.
func (g *Generator) dailyCount(weekend bool) int {
	var count int
	if weekend {
		count = g.rnd.Intn(g.opts.WeekendMax + 1)
	} else {
		count = g.rnd.Intn(g.opts.WeekdayMax + 1)
	}

	// Busy days are implausible every time they occur. Above the threshold
	// a second coin flip halves the count, rounding down.
	if count > g.opts.HalveThreshold && g.flipCoin() {
		count /= 2
	}
	return count
}

// commitTimes draws count distinct timestamps within the working hours of
// day, sorted ascending. A duplicate discards the whole draw and retries.
func (g *Generator) commitTimes(day time.Time, count int) []time.Time {
	seen := make(map[time.Time]struct{}, count)
	for len(seen) < count {
		hour := g.opts.HourMin + g.rnd.Intn(g.opts.HourMax-g.opts.HourMin+1)
		at := time.Date(
			day.Year(), day.Month(), day.Day(),
			hour, g.rnd.Intn(60), g.rnd.Intn(60), g.rnd.Intn(1e9),
			day.Location(),
		)
		seen[at] = struct{}{}
	}

	times := make([]time.Time, 0, len(seen))
	for at := range seen {
		times = append(times, at)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times
}

func (g *Generator) flipCoin() bool {
	return g.rnd.Intn(2) == 0
}

// IsWeekend reports whether day falls on a Saturday or Sunday.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
