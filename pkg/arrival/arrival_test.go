package arrival_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/arrival"
	"github.com/gnames/gnzoo/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		msg  string
		line string
		res  arrival.Row
	}{
		{
			msg:  "full line",
			line: "2024-03-05, 3 years old female hyena, born in spring, tan color, 70 pounds, from Friguia Park, Tunisia",
			res: arrival.Row{
				ArrivalDate: "2024-03-05",
				Age:         3,
				Sex:         "female",
				Species:     "hyena",
				BirthSeason: "spring",
				Color:       "tan",
				Weight:      70,
				Origin:      "Friguia Park, Tunisia",
			},
		},
		{
			msg:  "upper case words",
			line: "2024-03-26, 1 Year Old MALE Lion, Born In FALL, Golden Color, 285 Pounds, From Zanzibar, Tanzania",
			res: arrival.Row{
				ArrivalDate: "2024-03-26",
				Age:         1,
				Sex:         "male",
				Species:     "lion",
				BirthSeason: "fall",
				Color:       "Golden",
				Weight:      285,
				Origin:      "Zanzibar, Tanzania",
			},
		},
		{
			msg:  "unknown birth season",
			line: "2024-03-26, 4 years old male hyena, unknown birth season, tan and black spots color, 120 pounds, from Friguia Park, Tunisia",
			res: arrival.Row{
				ArrivalDate: "2024-03-26",
				Age:         4,
				Sex:         "male",
				Species:     "hyena",
				BirthSeason: "unknown birth season",
				Color:       "tan and black spots",
				Weight:      120,
				Origin:      "Friguia Park, Tunisia",
			},
		},
		{
			msg:  "no color word, no from",
			line: "2024-04-01, 10 years old female bear, winter, brown, 450 pounds, Yellowstone, Montana, USA",
			res: arrival.Row{
				ArrivalDate: "2024-04-01",
				Age:         10,
				Sex:         "female",
				Species:     "bear",
				BirthSeason: "winter",
				Color:       "brown",
				Weight:      450,
				Origin:      "Yellowstone, Montana, USA",
			},
		},
		{
			msg:  "born in without season",
			line: "2024-04-01, 2 years old male tiger, born in , striped color, 300 pounds, from Dhaka, Bangladesh",
			res: arrival.Row{
				ArrivalDate: "2024-04-01",
				Age:         2,
				Sex:         "male",
				Species:     "tiger",
				BirthSeason: "unknown",
				Color:       "striped",
				Weight:      300,
				Origin:      "Dhaka, Bangladesh",
			},
		},
		{
			msg:  "weight with suffix",
			line: " 2024-04-01 , 2 years old male tiger, born in summer, orange color, 300lbs, from Dhaka",
			res: arrival.Row{
				ArrivalDate: "2024-04-01",
				Age:         2,
				Sex:         "male",
				Species:     "tiger",
				BirthSeason: "summer",
				Color:       "orange",
				Weight:      300,
				Origin:      "Dhaka",
			},
		},
		{
			msg:  "species is not validated here",
			line: "2024-04-01, 2 years old male zebra, born in summer, striped color, 600 pounds, from Kenya",
			res: arrival.Row{
				ArrivalDate: "2024-04-01",
				Age:         2,
				Sex:         "male",
				Species:     "zebra",
				BirthSeason: "summer",
				Color:       "striped",
				Weight:      600,
				Origin:      "Kenya",
			},
		},
	}

	for _, v := range tests {
		res, err := arrival.Parse(v.line)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		msg  string
		line string
		code gn.ErrorCode
	}{
		{
			msg:  "too few segments",
			line: "2024-03-05, 3 years old female hyena, born in spring, tan color, 70 pounds",
			code: errcode.ArrivalFormatError,
		},
		{
			msg:  "no delimiters",
			line: "2024-03-05 3 years old female hyena",
			code: errcode.ArrivalFormatError,
		},
		{
			msg:  "commas without spaces",
			line: "2024-03-05,3 years old female hyena,spring,tan,70 pounds,Tunisia",
			code: errcode.ArrivalFormatError,
		},
		{
			msg:  "short description",
			line: "2024-03-05, 3 years old hyena, born in spring, tan color, 70 pounds, from Tunisia",
			code: errcode.ArrivalFormatError,
		},
		{
			msg:  "age is not a number",
			line: "2024-03-05, three years old female hyena, born in spring, tan color, 70 pounds, from Tunisia",
			code: errcode.ArrivalFormatError,
		},
		{
			msg:  "weight is not a number",
			line: "2024-03-05, 3 years old female hyena, born in spring, tan color, heavy pounds, from Tunisia",
			code: errcode.WeightParseError,
		},
		{
			msg:  "empty weight",
			line: "2024-03-05, 3 years old female hyena, born in spring, tan color, , from Tunisia",
			code: errcode.WeightParseError,
		},
	}

	for _, v := range tests {
		_, err := arrival.Parse(v.line)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}
}

func TestMalformedEntryMessage(t *testing.T) {
	line := "2024-03-05, 3 years old female hyena"
	_, err := arrival.Parse(line)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Contains(t, gnErr.Msg, "Malformed arrival entry")
	assert.Equal(t, line, gnErr.Vars[0])
	assert.Contains(t, gnErr.Err.Error(), "malformed arrival entry")
}
