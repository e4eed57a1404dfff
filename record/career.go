package record

import (
	"slices"
	"strings"

	"github.com/vegasq/statcat/expr"
)

// battingCounts are the counting stats shared by seasons and careers
type battingCounts struct {
	G, AB, R, H, H2, H3, HR, RBI, SB, CS, BB, SO, IBB, HBP, SH, SF, GIDP uint32
}

func bindBattingCounts(s *expr.Scope, c battingCounts) {
	s.SetUint("G", uint64(c.G))
	s.SetUint("AB", uint64(c.AB))
	s.SetUint("R", uint64(c.R))
	s.SetUint("H", uint64(c.H))
	s.SetUint("H2", uint64(c.H2))
	s.SetUint("H3", uint64(c.H3))
	s.SetUint("HR", uint64(c.HR))
	s.SetUint("RBI", uint64(c.RBI))
	s.SetUint("SB", uint64(c.SB))
	s.SetUint("CS", uint64(c.CS))
	s.SetUint("BB", uint64(c.BB))
	s.SetUint("SO", uint64(c.SO))
	s.SetUint("IBB", uint64(c.IBB))
	s.SetUint("HBP", uint64(c.HBP))
	s.SetUint("SH", uint64(c.SH))
	s.SetUint("SF", uint64(c.SF))
	s.SetUint("GIDP", uint64(c.GIDP))
}

func (b Batting) battingCounts() battingCounts {
	return battingCounts{
		G: b.G, AB: b.AB, R: b.R, H: b.H, H2: b.H2, H3: b.H3, HR: b.HR,
		RBI: b.RBI, SB: b.SB, CS: b.CS, BB: b.BB, SO: b.SO, IBB: b.IBB,
		HBP: b.HBP, SH: b.SH, SF: b.SF, GIDP: b.GIDP,
	}
}

// pitchingCounts are the counting stats shared by seasons and careers
type pitchingCounts struct {
	W, L, G, GS, CG, SHO, SV, IPOuts, H, ER, HR, BB, SO, IBB, WP, HBP, BK, BFP, GF, R, SH, SF, GIDP uint32
}

func bindPitchingCounts(s *expr.Scope, c pitchingCounts) {
	s.SetUint("W", uint64(c.W))
	s.SetUint("L", uint64(c.L))
	s.SetUint("G", uint64(c.G))
	s.SetUint("GS", uint64(c.GS))
	s.SetUint("CG", uint64(c.CG))
	s.SetUint("SHO", uint64(c.SHO))
	s.SetUint("SV", uint64(c.SV))
	s.SetUint("IPOuts", uint64(c.IPOuts))
	s.SetUint("H", uint64(c.H))
	s.SetUint("ER", uint64(c.ER))
	s.SetUint("HR", uint64(c.HR))
	s.SetUint("BB", uint64(c.BB))
	s.SetUint("SO", uint64(c.SO))
	s.SetUint("IBB", uint64(c.IBB))
	s.SetUint("WP", uint64(c.WP))
	s.SetUint("HBP", uint64(c.HBP))
	s.SetUint("BK", uint64(c.BK))
	s.SetUint("BFP", uint64(c.BFP))
	s.SetUint("GF", uint64(c.GF))
	s.SetUint("R", uint64(c.R))
	s.SetUint("SH", uint64(c.SH))
	s.SetUint("SF", uint64(c.SF))
	s.SetUint("GIDP", uint64(c.GIDP))
}

func (p Pitching) pitchingCounts() pitchingCounts {
	return pitchingCounts{
		W: p.W, L: p.L, G: p.G, GS: p.GS, CG: p.CG, SHO: p.SHO, SV: p.SV,
		IPOuts: p.IPOuts, H: p.H, ER: p.ER, HR: p.HR, BB: p.BB, SO: p.SO,
		IBB: p.IBB, WP: p.WP, HBP: p.HBP, BK: p.BK, BFP: p.BFP, GF: p.GF,
		R: p.R, SH: p.SH, SF: p.SF, GIDP: p.GIDP,
	}
}

// BattingCareer sums a player's batting seasons
type BattingCareer struct {
	PlayerID string `csv:"playerID" json:"playerID"`
	Seasons  uint32 `csv:"seasons" json:"seasons"`
	G        uint32 `csv:"G" json:"G"`
	AB       uint32 `csv:"AB" json:"AB"`
	R        uint32 `csv:"R" json:"R"`
	H        uint32 `csv:"H" json:"H"`
	H2       uint32 `csv:"2B" json:"2B"`
	H3       uint32 `csv:"3B" json:"3B"`
	HR       uint32 `csv:"HR" json:"HR"`
	RBI      uint32 `csv:"RBI" json:"RBI"`
	SB       uint32 `csv:"SB" json:"SB"`
	CS       uint32 `csv:"CS" json:"CS"`
	BB       uint32 `csv:"BB" json:"BB"`
	SO       uint32 `csv:"SO" json:"SO"`
	IBB      uint32 `csv:"IBB" json:"IBB"`
	HBP      uint32 `csv:"HBP" json:"HBP"`
	SH       uint32 `csv:"SH" json:"SH"`
	SF       uint32 `csv:"SF" json:"SF"`
	GIDP     uint32 `csv:"GIDP" json:"GIDP"`
}

// addSeason adds one season row to the career totals. Stints with several
// teams in one year count as separate rows but not as separate seasons.
func (c *BattingCareer) addSeason(b Batting, newYear bool) {
	if newYear {
		c.Seasons++
	}
	c.G += b.G
	c.AB += b.AB
	c.R += b.R
	c.H += b.H
	c.H2 += b.H2
	c.H3 += b.H3
	c.HR += b.HR
	c.RBI += b.RBI
	c.SB += b.SB
	c.CS += b.CS
	c.BB += b.BB
	c.SO += b.SO
	c.IBB += b.IBB
	c.HBP += b.HBP
	c.SH += b.SH
	c.SF += b.SF
	c.GIDP += b.GIDP
}

// BindVariables binds the career totals
func (c BattingCareer) BindVariables(s *expr.Scope) error {
	s.SetString("playerID", c.PlayerID)
	s.SetUint("seasons", uint64(c.Seasons))
	bindBattingCounts(s, battingCounts{
		G: c.G, AB: c.AB, R: c.R, H: c.H, H2: c.H2, H3: c.H3, HR: c.HR,
		RBI: c.RBI, SB: c.SB, CS: c.CS, BB: c.BB, SO: c.SO, IBB: c.IBB,
		HBP: c.HBP, SH: c.SH, SF: c.SF, GIDP: c.GIDP,
	})
	return s.Err()
}

// PitchingCareer sums a player's pitching seasons
type PitchingCareer struct {
	PlayerID string  `csv:"playerID" json:"playerID"`
	Seasons  uint32  `csv:"seasons" json:"seasons"`
	W        uint32  `csv:"W" json:"W"`
	L        uint32  `csv:"L" json:"L"`
	G        uint32  `csv:"G" json:"G"`
	GS       uint32  `csv:"GS" json:"GS"`
	CG       uint32  `csv:"CG" json:"CG"`
	SHO      uint32  `csv:"SHO" json:"SHO"`
	SV       uint32  `csv:"SV" json:"SV"`
	IPOuts   uint32  `csv:"IPouts" json:"IPouts"`
	H        uint32  `csv:"H" json:"H"`
	ER       uint32  `csv:"ER" json:"ER"`
	HR       uint32  `csv:"HR" json:"HR"`
	BB       uint32  `csv:"BB" json:"BB"`
	SO       uint32  `csv:"SO" json:"SO"`
	ERA      float64 `csv:"ERA" json:"ERA"`
	IBB      uint32  `csv:"IBB" json:"IBB"`
	WP       uint32  `csv:"WP" json:"WP"`
	HBP      uint32  `csv:"HBP" json:"HBP"`
	BK       uint32  `csv:"BK" json:"BK"`
	BFP      uint32  `csv:"BFP" json:"BFP"`
	GF       uint32  `csv:"GF" json:"GF"`
	R        uint32  `csv:"R" json:"R"`
	SH       uint32  `csv:"SH" json:"SH"`
	SF       uint32  `csv:"SF" json:"SF"`
	GIDP     uint32  `csv:"GIDP" json:"GIDP"`
}

func (c *PitchingCareer) addSeason(p Pitching, newYear bool) {
	if newYear {
		c.Seasons++
	}
	c.W += p.W
	c.L += p.L
	c.G += p.G
	c.GS += p.GS
	c.CG += p.CG
	c.SHO += p.SHO
	c.SV += p.SV
	c.IPOuts += p.IPOuts
	c.H += p.H
	c.ER += p.ER
	c.HR += p.HR
	c.BB += p.BB
	c.SO += p.SO
	c.IBB += p.IBB
	c.WP += p.WP
	c.HBP += p.HBP
	c.BK += p.BK
	c.BFP += p.BFP
	c.GF += p.GF
	c.R += p.R
	c.SH += p.SH
	c.SF += p.SF
	c.GIDP += p.GIDP

	// zero outs gives +Inf, or NaN when no runs were charged either
	c.ERA = float64(c.ER) * 27 / float64(c.IPOuts)
}

// BindVariables binds the career totals and the career ERA
func (c PitchingCareer) BindVariables(s *expr.Scope) error {
	s.SetString("playerID", c.PlayerID)
	s.SetUint("seasons", uint64(c.Seasons))
	bindPitchingCounts(s, pitchingCounts{
		W: c.W, L: c.L, G: c.G, GS: c.GS, CG: c.CG, SHO: c.SHO, SV: c.SV,
		IPOuts: c.IPOuts, H: c.H, ER: c.ER, HR: c.HR, BB: c.BB, SO: c.SO,
		IBB: c.IBB, WP: c.WP, HBP: c.HBP, BK: c.BK, BFP: c.BFP, GF: c.GF,
		R: c.R, SH: c.SH, SF: c.SF, GIDP: c.GIDP,
	})
	s.SetFloat("ERA", c.ERA)
	return s.Err()
}

// collect groups rows by player and folds each group into a career. A season
// is counted once per distinct year, whatever order the rows arrive in. The
// result is ordered by player id.
func collect[R any, C any](rows []R, key func(R) (player string, year uint32), newCareer func(string) C, add func(*C, R, bool), id func(C) string) []C {
	index := make(map[string]int)
	years := make(map[string]map[uint32]struct{})
	var careers []C

	for _, row := range rows {
		player, year := key(row)
		i, ok := index[player]
		if !ok {
			i = len(careers)
			index[player] = i
			careers = append(careers, newCareer(player))
			years[player] = make(map[uint32]struct{})
		}
		_, seen := years[player][year]
		years[player][year] = struct{}{}
		add(&careers[i], row, !seen)
	}

	slices.SortFunc(careers, func(a, b C) int {
		return strings.Compare(id(a), id(b))
	})
	return careers
}

// CollectBattingCareers sums batting seasons per player
func CollectBattingCareers(seasons []Batting) []BattingCareer {
	return collect(seasons,
		func(b Batting) (string, uint32) { return b.PlayerID, b.YearID },
		func(id string) BattingCareer { return BattingCareer{PlayerID: id} },
		func(c *BattingCareer, b Batting, newYear bool) { c.addSeason(b, newYear) },
		func(c BattingCareer) string { return c.PlayerID },
	)
}

// CollectPitchingCareers sums pitching seasons per player and computes the
// career ERA as ER * 27 / IPOuts
func CollectPitchingCareers(seasons []Pitching) []PitchingCareer {
	return collect(seasons,
		func(p Pitching) (string, uint32) { return p.PlayerID, p.YearID },
		func(id string) PitchingCareer { return PitchingCareer{PlayerID: id} },
		func(c *PitchingCareer, p Pitching, newYear bool) { c.addSeason(p, newYear) },
		func(c PitchingCareer) string { return c.PlayerID },
	)
}
