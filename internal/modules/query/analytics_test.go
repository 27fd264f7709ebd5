package query

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrelay/internal/types"
)

func recordFor(dest string, minute int) Record {
	return Record{
		Destination: types.Text(dest),
		Timestamp:   fmt.Sprintf("2024-05-01 10:%02d", minute),
		Status:      StatusCompleted,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	out, err := json.Marshal(Summarize(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalQueries": 0, "popularDestinations": [], "recentActivity": []}`, string(out))
}

func TestSummarizeRanksByCount(t *testing.T) {
	a := Summarize([]Record{recordFor("Goa", 0), recordFor("Goa", 1), recordFor("Kerala", 2)})

	assert.Equal(t, 3, a.TotalQueries)
	require.Len(t, a.PopularDestinations, 2)
	assert.Equal(t, "Goa", a.PopularDestinations[0].Name.String())
	assert.Equal(t, 2, a.PopularDestinations[0].Count)
	assert.Equal(t, "Kerala", a.PopularDestinations[1].Name.String())
	assert.Equal(t, 1, a.PopularDestinations[1].Count)
}

func TestSummarizeTiesKeepFirstSeenOrder(t *testing.T) {
	var records []Record
	for i, d := range []string{"Shimla", "Goa", "Agra", "Goa", "Agra", "Shimla", "Manali", "Ooty", "Leh", "Pune"} {
		records = append(records, recordFor(d, i))
	}
	a := Summarize(records)

	var names []string
	for _, d := range a.PopularDestinations {
		names = append(names, d.Name.String())
	}
	assert.Equal(t, []string{"Shimla", "Goa", "Agra", "Manali", "Ooty"}, names)
}

func TestSummarizeDoesNotNormalizeNames(t *testing.T) {
	a := Summarize([]Record{recordFor("Kashmir", 0), recordFor("kashmir", 1)})
	require.Len(t, a.PopularDestinations, 2)
	assert.Equal(t, 1, a.PopularDestinations[0].Count)
	assert.Equal(t, 1, a.PopularDestinations[1].Count)
}

func TestSummarizeRecentActivityWindow(t *testing.T) {
	var records []Record
	for i := 0; i < 15; i++ {
		records = append(records, recordFor(fmt.Sprintf("City%d", i), i))
	}
	a := Summarize(records)

	assert.Equal(t, 15, a.TotalQueries)
	require.Len(t, a.RecentActivity, 10)
	for i, act := range a.RecentActivity {
		assert.Equal(t, fmt.Sprintf("Query for City%d", i+5), act.Action)
		assert.Equal(t, fmt.Sprintf("2024-05-01 10:%02d", i+5), act.Time)
	}
}

func TestSummarizeRecentActivityShort(t *testing.T) {
	a := Summarize([]Record{recordFor("Goa", 1), recordFor("Kerala", 2)})
	assert.Equal(t, []Activity{
		{Time: "2024-05-01 10:01", Action: "Query for Goa"},
		{Time: "2024-05-01 10:02", Action: "Query for Kerala"},
	}, a.RecentActivity)
}

func TestSummarizeGroupsEscapedSpellingsTogether(t *testing.T) {
	var records []Record
	for i, literal := range []string{`"Goa"`, `"G\u006fa"`, `"Shrīnagar"`, `"Shr\u012bnagar"`, `"\u0047oa"`} {
		var dest types.Field
		require.NoError(t, json.Unmarshal([]byte(literal), &dest))
		records = append(records, Record{Destination: dest, Timestamp: fmt.Sprintf("2024-05-01 10:%02d", i)})
	}

	a := Summarize(records)
	require.Len(t, a.PopularDestinations, 2)
	assert.Equal(t, "Goa", a.PopularDestinations[0].Name.String())
	assert.Equal(t, 3, a.PopularDestinations[0].Count)
	assert.Equal(t, "Shrīnagar", a.PopularDestinations[1].Name.String())
	assert.Equal(t, 2, a.PopularDestinations[1].Count)
	assert.Equal(t, "Query for Goa", a.RecentActivity[1].Action)
}
