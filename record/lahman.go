package record

import (
	"github.com/vegasq/statcat/expr"
)

// Batting is one row of the Lahman Batting table: a player's season with
// one team. Missing counts decode as zero.
type Batting struct {
	PlayerID string `csv:"playerID" parquet:"playerID" json:"playerID"`
	YearID   uint32 `csv:"yearID" parquet:"yearID" json:"yearID"`
	Stint    uint32 `csv:"stint" parquet:"stint" json:"stint"`
	TeamID   string `csv:"teamID" parquet:"teamID" json:"teamID"`
	LgID     string `csv:"lgID" parquet:"lgID" json:"lgID"`
	G        uint32 `csv:"G" parquet:"G" json:"G"`
	AB       uint32 `csv:"AB" parquet:"AB" json:"AB"`
	R        uint32 `csv:"R" parquet:"R" json:"R"`
	H        uint32 `csv:"H" parquet:"H" json:"H"`
	H2       uint32 `csv:"2B" parquet:"2B" json:"2B"`
	H3       uint32 `csv:"3B" parquet:"3B" json:"3B"`
	HR       uint32 `csv:"HR" parquet:"HR" json:"HR"`
	RBI      uint32 `csv:"RBI" parquet:"RBI" json:"RBI"`
	SB       uint32 `csv:"SB" parquet:"SB" json:"SB"`
	CS       uint32 `csv:"CS" parquet:"CS" json:"CS"`
	BB       uint32 `csv:"BB" parquet:"BB" json:"BB"`
	SO       uint32 `csv:"SO" parquet:"SO" json:"SO"`
	IBB      uint32 `csv:"IBB" parquet:"IBB" json:"IBB"`
	HBP      uint32 `csv:"HBP" parquet:"HBP" json:"HBP"`
	SH       uint32 `csv:"SH" parquet:"SH" json:"SH"`
	SF       uint32 `csv:"SF" parquet:"SF" json:"SF"`
	GIDP     uint32 `csv:"GIDP" parquet:"GIDP" json:"GIDP"`
}

// BindVariables binds the season. Doubles and triples are exposed as H2 and
// H3 since 2B and 3B are not identifiers.
func (b Batting) BindVariables(s *expr.Scope) error {
	s.SetString("playerID", b.PlayerID)
	s.SetUint("yearID", uint64(b.YearID))
	s.SetUint("stint", uint64(b.Stint))
	s.SetString("teamID", b.TeamID)
	s.SetString("lgID", b.LgID)
	bindBattingCounts(s, b.battingCounts())
	return s.Err()
}

// Pitching is one row of the Lahman Pitching table
type Pitching struct {
	PlayerID string  `csv:"playerID" parquet:"playerID" json:"playerID"`
	YearID   uint32  `csv:"yearID" parquet:"yearID" json:"yearID"`
	Stint    uint32  `csv:"stint" parquet:"stint" json:"stint"`
	TeamID   string  `csv:"teamID" parquet:"teamID" json:"teamID"`
	LgID     string  `csv:"lgID" parquet:"lgID" json:"lgID"`
	W        uint32  `csv:"W" parquet:"W" json:"W"`
	L        uint32  `csv:"L" parquet:"L" json:"L"`
	G        uint32  `csv:"G" parquet:"G" json:"G"`
	GS       uint32  `csv:"GS" parquet:"GS" json:"GS"`
	CG       uint32  `csv:"CG" parquet:"CG" json:"CG"`
	SHO      uint32  `csv:"SHO" parquet:"SHO" json:"SHO"`
	SV       uint32  `csv:"SV" parquet:"SV" json:"SV"`
	IPOuts   uint32  `csv:"IPouts" parquet:"IPouts" json:"IPouts"`
	H        uint32  `csv:"H" parquet:"H" json:"H"`
	ER       uint32  `csv:"ER" parquet:"ER" json:"ER"`
	HR       uint32  `csv:"HR" parquet:"HR" json:"HR"`
	BB       uint32  `csv:"BB" parquet:"BB" json:"BB"`
	SO       uint32  `csv:"SO" parquet:"SO" json:"SO"`
	BAOpp    float64 `csv:"BAOpp" parquet:"BAOpp" json:"BAOpp"`
	ERA      float64 `csv:"ERA" parquet:"ERA" json:"ERA"`
	IBB      uint32  `csv:"IBB" parquet:"IBB" json:"IBB"`
	WP       uint32  `csv:"WP" parquet:"WP" json:"WP"`
	HBP      uint32  `csv:"HBP" parquet:"HBP" json:"HBP"`
	BK       uint32  `csv:"BK" parquet:"BK" json:"BK"`
	BFP      uint32  `csv:"BFP" parquet:"BFP" json:"BFP"`
	GF       uint32  `csv:"GF" parquet:"GF" json:"GF"`
	R        uint32  `csv:"R" parquet:"R" json:"R"`
	SH       uint32  `csv:"SH" parquet:"SH" json:"SH"`
	SF       uint32  `csv:"SF" parquet:"SF" json:"SF"`
	GIDP     uint32  `csv:"GIDP" parquet:"GIDP" json:"GIDP"`
}

// BindVariables binds the season. Outs pitched are exposed as IPOuts.
func (p Pitching) BindVariables(s *expr.Scope) error {
	s.SetString("playerID", p.PlayerID)
	s.SetUint("yearID", uint64(p.YearID))
	s.SetUint("stint", uint64(p.Stint))
	s.SetString("teamID", p.TeamID)
	s.SetString("lgID", p.LgID)
	bindPitchingCounts(s, p.pitchingCounts())
	s.SetFloat("BAOpp", p.BAOpp)
	s.SetFloat("ERA", p.ERA)
	return s.Err()
}
