package animal_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/animal"
	"github.com/gnames/gnzoo/pkg/arrival"
	"github.com/gnames/gnzoo/pkg/errcode"
	"github.com/gnames/gnzoo/pkg/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hyenaRow() arrival.Row {
	return arrival.Row{
		ArrivalDate: "2024-03-05",
		Age:         3,
		Sex:         "female",
		Species:     "hyena",
		BirthSeason: "spring",
		Color:       "tan",
		Weight:      70,
		Origin:      "Friguia Park, Tunisia",
	}
}

func TestNew(t *testing.T) {
	a, err := animal.New(hyenaRow(), "Hy01", "Kamari", "2021-03-15", "Motto Clan")
	require.NoError(t, err)

	assert.Equal(t, species.Hyena, a.Species)
	assert.Equal(t, "Hyena Habitat", a.HabitatName())
	assert.Equal(t, "Clan: Motto Clan", a.SocialGroupLabel())
	assert.Equal(t,
		"Hy01; Kamari; birth date 2021-03-15; tan color; female; 70 pounds; "+
			"from Friguia Park, Tunisia; arrived 2024-03-05",
		a.ReportLine(),
	)
	assert.Empty(t, a.Canonical)
}

func TestVariants(t *testing.T) {
	tests := []struct {
		key, group, habitat, label string
	}{
		{"hyena", "Spotted Clan", "Hyena Habitat", "Clan: Spotted Clan"},
		{"lion", "Golden Pride", "Lion Habitat", "Pride: Golden Pride"},
		{"tiger", "Ember Ambush", "Tiger Habitat", "Ambush: Ember Ambush"},
		{"bear", "Forest Sleuth", "Bear Habitat", "Sleuth: Forest Sleuth"},
	}

	for _, v := range tests {
		row := hyenaRow()
		row.Species = v.key
		a, err := animal.New(row, "X01", "Name", "2021-03-15", v.group)
		require.NoError(t, err, v.key)
		assert.Equal(t, v.habitat, a.HabitatName(), v.key)
		assert.Equal(t, v.label, a.SocialGroupLabel(), v.key)
	}
}

func TestNewUnsupported(t *testing.T) {
	for _, v := range []string{"zebra", "Lion", "HYENA", ""} {
		row := hyenaRow()
		row.Species = v
		_, err := animal.New(row, "Hy01", "Kamari", "2021-03-15", "Motto Clan")
		require.Error(t, err, v)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v)
		assert.Equal(t, errcode.UnsupportedSpeciesError, gnErr.Code, v)
	}
}

func TestUUID(t *testing.T) {
	a1, err := animal.New(hyenaRow(), "Hy01", "Kamari", "2021-03-15", "Motto Clan")
	require.NoError(t, err)
	a2, err := animal.New(hyenaRow(), "Hy01", "Kamari", "2021-03-15", "Motto Clan")
	require.NoError(t, err)
	a3, err := animal.New(hyenaRow(), "Hy02", "Simba", "2021-03-15", "Serengeti Clan")
	require.NoError(t, err)

	assert.Equal(t, a1.UUID, a2.UUID, "same identity gives same UUID")
	assert.NotEqual(t, a1.UUID, a3.UUID)
	assert.Equal(t, 5, int(a1.UUID.Version()))
}

func TestOptCanonical(t *testing.T) {
	a, err := animal.New(
		hyenaRow(), "Hy01", "Kamari", "2021-03-15", "Motto Clan",
		animal.OptCanonical("Crocuta crocuta"),
	)
	require.NoError(t, err)
	assert.Equal(t, "Crocuta crocuta", a.Canonical)
}
