// Package arrival parses lines of the arriving animals file, for example:
//
//	2024-03-05, 3 years old female hyena, born in spring, tan color, 70 pounds, from Friguia Park, Tunisia
//
// The positional layout is fixed. Other phrasings or orderings are not
// recognized.
package arrival

import (
	"strconv"
	"strings"

	"github.com/gnames/gnzoo/pkg/textutil"
)

const (
	segDelim    = ", "
	minSegments = 6
)

// Row contains facts extracted from one arrival line.
type Row struct {
	// ArrivalDate is the verbatim ISO date of arrival.
	ArrivalDate string
	Age         int
	// Sex is lowercase.
	Sex string
	// Species is the lowercase species key.
	Species string
	// BirthSeason is "unknown" if the line does not provide it.
	BirthSeason string
	Color       string
	// Weight in pounds.
	Weight int
	Origin string
}

// Parse converts an arrival line into a Row.
func Parse(line string) (Row, error) {
	var res Row
	parts := textutil.Split(line, segDelim)
	if len(parts) < minSegments {
		return Row{}, MalformedEntryError(line)
	}

	res.ArrivalDate = textutil.Trim(parts[0])

	var err error
	res.Age, res.Sex, res.Species, err = parseDescription(parts[1])
	if err != nil {
		return Row{}, err
	}

	res.BirthSeason = parseSeason(parts[2])
	res.Color = parseColor(parts[3])

	res.Weight, err = parseWeight(parts[4])
	if err != nil {
		return Row{}, err
	}

	res.Origin = parseOrigin(parts[minSegments-1:])
	return res, nil
}

// parseDescription reads "<age> years old <sex> <species>".
func parseDescription(s string) (int, string, string, error) {
	fields := strings.Fields(s)
	if len(fields) < 5 {
		return 0, "", "", DescriptionError(s, nil)
	}
	age, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", "", DescriptionError(s, err)
	}
	sex := textutil.ToLower(fields[3])
	sp := textutil.ToLower(fields[4])
	return age, sex, sp, nil
}

func parseSeason(s string) string {
	const marker = "born in"
	var res string
	lower := textutil.ToLower(s)
	if idx := strings.Index(lower, marker); idx != -1 {
		rest := strings.Fields(lower[idx+len(marker):])
		if len(rest) > 0 {
			res = rest[0]
		}
	} else {
		res = textutil.Trim(s)
	}

	if res == "" {
		res = "unknown"
	}
	return res
}

func parseColor(s string) string {
	idx := strings.Index(textutil.ToLower(s), " color")
	if idx == -1 {
		return textutil.Trim(s)
	}
	return textutil.Trim(s[:idx])
}

// parseWeight reads the leading integer of "<weight> pounds". Like the
// C-style conversions it ignores anything after the leading digits.
func parseWeight(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, WeightParseError(s, nil)
	}
	tok := fields[0]

	end := 0
	if end < len(tok) && (tok[end] == '-' || tok[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, WeightParseError(s, nil)
	}

	res, err := strconv.Atoi(tok[:end])
	if err != nil {
		return 0, WeightParseError(s, err)
	}
	return res, nil
}

func parseOrigin(parts []string) string {
	const prefix = "from "
	res := strings.Join(parts, segDelim)
	if strings.HasPrefix(textutil.ToLower(res), prefix) {
		res = res[len(prefix):]
	}
	return textutil.Trim(res)
}
