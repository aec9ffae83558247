package menu

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

var calendarWeekPattern = regexp.MustCompile(`^Mensa.*, (?P<week>[0-9]{1,2})\. KW[:;].*?\.(?P<year>2[0-9]{3})\s*$`)

// weekdays maps the plan's day headers to weekdays
var weekdays = map[string]time.Weekday{
	"Montag":     time.Monday,
	"Dienstag":   time.Tuesday,
	"Mittwoch":   time.Wednesday,
	"Donnerstag": time.Thursday,
	"Freitag":    time.Friday,
}

// CalendarWeek identifies the ISO week a plan covers
type CalendarWeek struct {
	Year int
	Week int
}

// FindCalendarWeek returns the week announced by the first header line
// matching the plan template
func FindCalendarWeek(lines []layout.Placed) (CalendarWeek, error) {
	for _, line := range lines {
		m := calendarWeekPattern.FindStringSubmatch(line.Text())
		if m == nil {
			continue
		}
		week, _ := strconv.Atoi(m[calendarWeekPattern.SubexpIndex("week")])
		year, _ := strconv.Atoi(m[calendarWeekPattern.SubexpIndex("year")])
		// the header's year is that of the week's last day, which for week 53
		// can already be January 1st
		if week > weeksInYear(year) && week == weeksInYear(year-1) {
			year--
		}
		cw := CalendarWeek{Year: year, Week: week}
		if err := cw.validate(); err != nil {
			return CalendarWeek{}, err
		}
		return cw, nil
	}
	return CalendarWeek{}, fmt.Errorf("%w: no calendar week header found", ErrPatternMismatch)
}

// weeksInYear returns 52 or 53. December 28th always falls into the last
// ISO week of its year.
func weeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

func (w CalendarWeek) validate() error {
	if w.Week < 1 || w.Week > weeksInYear(w.Year) {
		return fmt.Errorf("%w: calendar week %d out of range for %d", ErrPatternMismatch, w.Week, w.Year)
	}
	return nil
}

// Date returns the date of weekday in the ISO week
func (w CalendarWeek) Date(weekday time.Weekday) time.Time {
	// January 4th always falls into ISO week 1
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	isoDay := (int(weekday) + 6) % 7
	return monday.AddDate(0, 0, 7*(w.Week-1)+isoDay)
}

// DayDate resolves a day header to its ISO date string
func (w CalendarWeek) DayDate(dayName string) (string, error) {
	if err := w.validate(); err != nil {
		return "", err
	}
	weekday, ok := weekdays[dayName]
	if !ok {
		return "", fmt.Errorf("%w: unknown day name %q", ErrPatternMismatch, dayName)
	}
	return w.Date(weekday).Format(time.DateOnly), nil
}
