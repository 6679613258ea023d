// Package isodate reads and writes calendar dates in YYYY-MM-DD form and
// estimates birth dates of arriving animals.
//
// Dates are kept as plain numbers. Month and day ranges are not validated,
// a value like 2024-13-99 goes through Parse and String unchanged.
package isodate

import (
	"fmt"

	"github.com/gnames/gnzoo/pkg/textutil"
)

// Date is a calendar date broken into numbers.
type Date struct {
	Year  int
	Month int
	Day   int
}

// seasonDates maps a season to the month and day used as a birthday.
var seasonDates = map[string]Date{
	"spring": {Month: 3, Day: 15},
	"summer": {Month: 6, Day: 15},
	"fall":   {Month: 9, Day: 15},
	"autumn": {Month: 9, Day: 15},
	"winter": {Month: 12, Day: 15},
}

// Parse reads a date written as three integers separated by dashes.
// Anything after the day is ignored.
func Parse(s string) (Date, error) {
	var res Date
	n, err := fmt.Sscanf(s, "%d-%d-%d", &res.Year, &res.Month, &res.Day)
	if err != nil || n != 3 {
		return Date{}, DateFormatError(s, err)
	}
	return res, nil
}

// String renders the date as YYYY-MM-DD with zero padding.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Format is a convenience wrapper around Date.String.
func Format(d Date) string {
	return d.String()
}

// BirthDate estimates a birth date from the age of an animal, the season
// it was born in and the date it arrived. Unknown seasons reuse the
// arrival month and day.
func BirthDate(age int, season, arrival string) (string, error) {
	arr, err := Parse(arrival)
	if err != nil {
		return "", err
	}

	res := Date{Year: arr.Year - age, Month: arr.Month, Day: arr.Day}
	if sd, ok := seasonDates[textutil.ToLower(season)]; ok {
		res.Month = sd.Month
		res.Day = sd.Day
	}
	return res.String(), nil
}
