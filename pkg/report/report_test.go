package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gnames/gnzoo/pkg/animal"
	"github.com/gnames/gnzoo/pkg/arrival"
	"github.com/gnames/gnzoo/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newAnimal(t *testing.T, key, id, name, group string) *animal.Animal {
	row := arrival.Row{
		ArrivalDate: "2024-03-05",
		Age:         3,
		Sex:         "female",
		Species:     key,
		BirthSeason: "spring",
		Color:       "tan",
		Weight:      70,
		Origin:      "Friguia Park, Tunisia",
	}
	a, err := animal.New(row, id, name, "2021-03-15", group)
	require.NoError(t, err)
	return a
}

func testIndex(t *testing.T) *report.Index {
	idx := report.NewIndex()
	idx.Add(newAnimal(t, "lion", "Li01", "Nala", "Golden Pride"))
	idx.Add(newAnimal(t, "hyena", "Hy01", "Kamari", "Motto Clan"))
	idx.Add(newAnimal(t, "hyena", "Hy02", "Simba", "Serengeti Clan"))
	return idx
}

func TestIndex(t *testing.T) {
	idx := testIndex(t)
	assert.Equal(t, 3, idx.Len())

	hyenas := idx.Occupants("Hyena Habitat")
	require.Len(t, hyenas, 2)
	assert.Equal(t, "Hy01", hyenas[0].ID)
	assert.Equal(t, "Hy02", hyenas[1].ID)
	assert.Len(t, idx.Occupants("Lion Habitat"), 1)
	assert.Empty(t, idx.Occupants("Bear Habitat"))

	ids := make([]string, 0, 3)
	for _, v := range idx.Animals() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"Li01", "Hy01", "Hy02"}, ids)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := testIndex(t).WriteText(&buf)
	require.NoError(t, err)

	exp := `Hyena Habitat (2)
  - Hy01; Kamari; birth date 2021-03-15; tan color; female; 70 pounds; from Friguia Park, Tunisia; arrived 2024-03-05 | Clan: Motto Clan
  - Hy02; Simba; birth date 2021-03-15; tan color; female; 70 pounds; from Friguia Park, Tunisia; arrived 2024-03-05 | Clan: Serengeti Clan

Lion Habitat (1)
  - Li01; Nala; birth date 2021-03-15; tan color; female; 70 pounds; from Friguia Park, Tunisia; arrived 2024-03-05 | Pride: Golden Pride

Tiger Habitat (0)

Bear Habitat (0)

`
	assert.Equal(t, exp, buf.String())
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := report.NewIndex().WriteText(&buf)
	require.NoError(t, err)
	assert.Equal(t,
		"Hyena Habitat (0)\n\nLion Habitat (0)\n\nTiger Habitat (0)\n\nBear Habitat (0)\n\n",
		buf.String(),
	)
}

func TestPopulation(t *testing.T) {
	pop := testIndex(t).Population()
	assert.Equal(t, 3, pop.Total)
	require.Len(t, pop.Habitats, 4)

	counts := make([]int, 0, 4)
	for _, v := range pop.Habitats {
		counts = append(counts, v.Count)
		assert.NotNil(t, v.Animals, v.Name)
	}
	assert.Equal(t, []int{2, 1, 0, 0}, counts)
	assert.Equal(t, report.HabitatOrder()[0], pop.Habitats[0].Name)
}

func TestEncodeJSON(t *testing.T) {
	pop := testIndex(t).Population()
	bs, err := pop.Encode(report.JSON)
	require.NoError(t, err)

	var res struct {
		Total    int `json:"total"`
		Habitats []struct {
			Name    string `json:"name"`
			Animals []struct {
				ID      string `json:"id"`
				UUID    string `json:"uuid"`
				Species string `json:"species"`
				Group   string `json:"socialGroup"`
			} `json:"animals"`
		} `json:"habitats"`
	}
	require.NoError(t, json.Unmarshal(bs, &res))
	assert.Equal(t, 3, res.Total)
	hy := res.Habitats[0].Animals[0]
	assert.Equal(t, "Hy01", hy.ID)
	assert.Equal(t, "hyena", hy.Species)
	assert.Equal(t, "Motto Clan", hy.Group)
	assert.Len(t, hy.UUID, 36)
	assert.Empty(t, res.Habitats[3].Animals)
}

func TestEncodeYAML(t *testing.T) {
	pop := testIndex(t).Population()
	bs, err := pop.Encode(report.YAML)
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, yaml.Unmarshal(bs, &res))
	assert.Equal(t, 3, res["total"])
	assert.Contains(t, string(bs), "species: lion")
	assert.Contains(t, string(bs), "name: Kamari")
}

func TestEncodeText(t *testing.T) {
	_, err := testIndex(t).Population().Encode(report.Text)
	assert.Error(t, err)
}

func TestNewFormat(t *testing.T) {
	tests := []struct {
		inp string
		res report.Format
		ok  bool
	}{
		{"text", report.Text, true},
		{"JSON", report.JSON, true},
		{" yaml ", report.YAML, true},
		{"csv", report.Text, false},
	}

	for _, v := range tests {
		res, ok := report.NewFormat(v.inp)
		assert.Equal(t, v.ok, ok, v.inp)
		assert.Equal(t, v.res, res, v.inp)
	}
	assert.Equal(t, ".json", report.JSON.Ext())
	assert.Equal(t, "", report.Text.Ext())
	assert.Equal(t, "yaml", report.YAML.String())
}
