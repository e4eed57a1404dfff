package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/statcat/expr"
	"github.com/vegasq/statcat/search"
)

func TestBindVariables_Names(t *testing.T) {
	tests := []struct {
		name   string
		record search.Bindable
		count  int
		has    []string
	}{
		{"batting gamelog", BattingGamelog{}, 21, []string{"player_id", "game_id", "PA", "RBI2out", "POS"}},
		{"fielding gamelog", FieldingGamelog{}, 11, []string{"POS", "O", "BIP", "BF"}},
		{"pitching gamelog", PitchingGamelog{}, 24, []string{"GS", "IPouts", "P", "S", "decision"}},
		{"lahman batting", Batting{}, 22, []string{"playerID", "yearID", "H2", "H3", "GIDP"}},
		{"lahman pitching", Pitching{}, 30, []string{"IPOuts", "BAOpp", "ERA", "BFP"}},
		{"batting career", BattingCareer{}, 19, []string{"playerID", "seasons", "H2"}},
		{"pitching career", PitchingCareer{}, 26, []string{"playerID", "ERA", "IPOuts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := search.VariablesOf(tt.record)
			require.NoError(t, err)
			assert.Len(t, names, tt.count)
			for _, want := range tt.has {
				assert.Contains(t, names, want)
			}
		})
	}
}

func TestBindVariables_Types(t *testing.T) {
	scope := expr.DefaultContext().NewScope()
	g := PitchingGamelog{PlayerID: "johnw101", GS: true, IPouts: 27, Decision: "W"}
	require.NoError(t, g.BindVariables(scope))

	v, _ := scope.Lookup("GS")
	assert.Equal(t, true, v)
	v, _ = scope.Lookup("IPouts")
	assert.Equal(t, uint64(27), v)
	v, _ = scope.Lookup("decision")
	assert.Equal(t, "W", v)
	v, _ = scope.Lookup("player_id")
	assert.Equal(t, "johnw101", v)
}

func TestGamelogSearch(t *testing.T) {
	games := []BattingGamelog{
		{PlayerID: "ruthb101", GameID: "NYA192709300", AB: 4, H: 2, HR: 1},
		{PlayerID: "gehrl101", GameID: "NYA192709300", AB: 3, H: 0},
		{PlayerID: "lazzt101", GameID: "NYA192709300", AB: 5, H: 3, HR: 2},
	}

	s, err := search.New("H >= 2", "HR")
	require.NoError(t, err)

	games = search.Filter(s, games)
	search.Sort(s, games, search.Descending)
	require.Len(t, games, 2)
	assert.Equal(t, "lazzt101", games[0].PlayerID)
	assert.Equal(t, "ruthb101", games[1].PlayerID)
}

func TestCollectBattingCareers(t *testing.T) {
	seasons := []Batting{
		{PlayerID: "ruthba01", YearID: 1927, Stint: 1, G: 151, AB: 540, H: 192, H2: 29, H3: 8, HR: 60},
		{PlayerID: "gehrilo01", YearID: 1927, Stint: 1, G: 155, AB: 584, H: 218, HR: 47},
		{PlayerID: "ruthba01", YearID: 1928, Stint: 1, G: 154, AB: 536, H: 173, HR: 54},
		{PlayerID: "aaronha01", YearID: 1974, Stint: 1, G: 112, AB: 340, HR: 20},
		{PlayerID: "ruthba01", YearID: 1935, Stint: 1, G: 28, AB: 72, HR: 6},
	}

	careers := CollectBattingCareers(seasons)
	require.Len(t, careers, 3)
	assert.Equal(t, []string{"aaronha01", "gehrilo01", "ruthba01"},
		[]string{careers[0].PlayerID, careers[1].PlayerID, careers[2].PlayerID})

	ruth := careers[2]
	assert.Equal(t, uint32(3), ruth.Seasons)
	assert.Equal(t, uint32(333), ruth.G)
	assert.Equal(t, uint32(120), ruth.HR)
	assert.Equal(t, uint32(29), ruth.H2)

	s, err := search.New("HR >= 100", "")
	require.NoError(t, err)
	sluggers := search.Filter(s, careers)
	require.Len(t, sluggers, 1)
	assert.Equal(t, "ruthba01", sluggers[0].PlayerID)
}

func TestCollectBattingCareers_SeasonsCountDistinctYears(t *testing.T) {
	seasons := []Batting{
		{PlayerID: "tradedb01", YearID: 2001, Stint: 1, HR: 1},
		{PlayerID: "tradedb01", YearID: 2002, Stint: 1, HR: 1},
		{PlayerID: "tradedb01", YearID: 2001, Stint: 2, HR: 1},
	}

	careers := CollectBattingCareers(seasons)
	require.Len(t, careers, 1)
	assert.Equal(t, uint32(2), careers[0].Seasons)
	assert.Equal(t, uint32(3), careers[0].HR)
}

func TestCollectPitchingCareers_SeasonsAcrossFiles(t *testing.T) {
	// two season files read back to back
	seasons := []Pitching{
		{PlayerID: "youngcy01", YearID: 1901, Stint: 1, W: 33},
		{PlayerID: "youngcy01", YearID: 1902, Stint: 1, W: 32},
		{PlayerID: "youngcy01", YearID: 1901, Stint: 2, W: 1},
		{PlayerID: "youngcy01", YearID: 1903, Stint: 1, W: 28},
	}

	careers := CollectPitchingCareers(seasons)
	require.Len(t, careers, 1)
	assert.Equal(t, uint32(3), careers[0].Seasons)
	assert.Equal(t, uint32(94), careers[0].W)
}

func TestCollectPitchingCareers(t *testing.T) {
	seasons := []Pitching{
		{PlayerID: "youngcy01", YearID: 1901, Stint: 1, W: 33, IPOuts: 1113, ER: 69},
		{PlayerID: "youngcy01", YearID: 1902, Stint: 1, W: 32, IPOuts: 1152, ER: 78},
		{PlayerID: "traded01", YearID: 1950, Stint: 1, W: 2, IPOuts: 90, ER: 10},
		{PlayerID: "traded01", YearID: 1950, Stint: 2, W: 3, IPOuts: 90, ER: 10},
		{PlayerID: "mopup01", YearID: 1960, Stint: 1, G: 1, ER: 2},
	}

	careers := CollectPitchingCareers(seasons)
	require.Len(t, careers, 3)

	mopup, traded, young := careers[0], careers[1], careers[2]
	assert.Equal(t, "youngcy01", young.PlayerID)
	assert.Equal(t, uint32(65), young.W)
	assert.InDelta(t, 147.0*27/2265, young.ERA, 1e-9)
	assert.Equal(t, uint32(2), young.Seasons)

	assert.Equal(t, uint32(1), traded.Seasons)
	assert.InDelta(t, 3.0, traded.ERA, 1e-9)

	assert.True(t, math.IsInf(mopup.ERA, 1))

	s, err := search.New("", "ERA")
	require.NoError(t, err)
	search.Sort(s, careers, search.Ascending)
	assert.Equal(t, []string{"youngcy01", "traded01", "mopup01"},
		[]string{careers[0].PlayerID, careers[1].PlayerID, careers[2].PlayerID})
}
