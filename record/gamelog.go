package record

import (
	"github.com/vegasq/statcat/expr"
)

// BattingGamelog is one player's batting line in one game
type BattingGamelog struct {
	PlayerID string `csv:"player_id" parquet:"player_id" json:"player_id"`
	GameID   string `csv:"game_id" parquet:"game_id" json:"game_id"`
	PA       uint32 `csv:"PA" parquet:"PA" json:"PA"`
	AB       uint32 `csv:"AB" parquet:"AB" json:"AB"`
	R        uint32 `csv:"R" parquet:"R" json:"R"`
	H        uint32 `csv:"H" parquet:"H" json:"H"`
	D        uint32 `csv:"D" parquet:"D" json:"D"`
	T        uint32 `csv:"T" parquet:"T" json:"T"`
	HR       uint32 `csv:"HR" parquet:"HR" json:"HR"`
	RBI      uint32 `csv:"RBI" parquet:"RBI" json:"RBI"`
	RBI2out  uint32 `csv:"RBI2out" parquet:"RBI2out" json:"RBI2out"`
	BB       uint32 `csv:"BB" parquet:"BB" json:"BB"`
	IBB      uint32 `csv:"IBB" parquet:"IBB" json:"IBB"`
	SO       uint32 `csv:"SO" parquet:"SO" json:"SO"`
	GIDP     uint32 `csv:"GIDP" parquet:"GIDP" json:"GIDP"`
	HBP      uint32 `csv:"HBP" parquet:"HBP" json:"HBP"`
	SH       uint32 `csv:"SH" parquet:"SH" json:"SH"`
	SF       uint32 `csv:"SF" parquet:"SF" json:"SF"`
	SB       uint32 `csv:"SB" parquet:"SB" json:"SB"`
	CS       uint32 `csv:"CS" parquet:"CS" json:"CS"`
	POS      string `csv:"POS" parquet:"POS" json:"POS"`
}

// BindVariables binds every column under its header name
func (g BattingGamelog) BindVariables(s *expr.Scope) error {
	s.SetString("player_id", g.PlayerID)
	s.SetString("game_id", g.GameID)
	s.SetUint("PA", uint64(g.PA))
	s.SetUint("AB", uint64(g.AB))
	s.SetUint("R", uint64(g.R))
	s.SetUint("H", uint64(g.H))
	s.SetUint("D", uint64(g.D))
	s.SetUint("T", uint64(g.T))
	s.SetUint("HR", uint64(g.HR))
	s.SetUint("RBI", uint64(g.RBI))
	s.SetUint("RBI2out", uint64(g.RBI2out))
	s.SetUint("BB", uint64(g.BB))
	s.SetUint("IBB", uint64(g.IBB))
	s.SetUint("SO", uint64(g.SO))
	s.SetUint("GIDP", uint64(g.GIDP))
	s.SetUint("HBP", uint64(g.HBP))
	s.SetUint("SH", uint64(g.SH))
	s.SetUint("SF", uint64(g.SF))
	s.SetUint("SB", uint64(g.SB))
	s.SetUint("CS", uint64(g.CS))
	s.SetString("POS", g.POS)
	return s.Err()
}

// FieldingGamelog is one player's fielding line at one position in one game
type FieldingGamelog struct {
	PlayerID string `csv:"player_id" parquet:"player_id" json:"player_id"`
	GameID   string `csv:"game_id" parquet:"game_id" json:"game_id"`
	POS      uint32 `csv:"POS" parquet:"POS" json:"POS"`
	O        uint32 `csv:"O" parquet:"O" json:"O"`
	PO       uint32 `csv:"PO" parquet:"PO" json:"PO"`
	A        uint32 `csv:"A" parquet:"A" json:"A"`
	E        uint32 `csv:"E" parquet:"E" json:"E"`
	DP       uint32 `csv:"DP" parquet:"DP" json:"DP"`
	TP       uint32 `csv:"TP" parquet:"TP" json:"TP"`
	BIP      uint32 `csv:"BIP" parquet:"BIP" json:"BIP"`
	BF       uint32 `csv:"BF" parquet:"BF" json:"BF"`
}

// BindVariables binds every column under its header name
func (g FieldingGamelog) BindVariables(s *expr.Scope) error {
	s.SetString("player_id", g.PlayerID)
	s.SetString("game_id", g.GameID)
	s.SetUint("POS", uint64(g.POS))
	s.SetUint("O", uint64(g.O))
	s.SetUint("PO", uint64(g.PO))
	s.SetUint("A", uint64(g.A))
	s.SetUint("E", uint64(g.E))
	s.SetUint("DP", uint64(g.DP))
	s.SetUint("TP", uint64(g.TP))
	s.SetUint("BIP", uint64(g.BIP))
	s.SetUint("BF", uint64(g.BF))
	return s.Err()
}

// PitchingGamelog is one pitcher's line in one game
type PitchingGamelog struct {
	PlayerID string `csv:"player_id" parquet:"player_id" json:"player_id"`
	GameID   string `csv:"game_id" parquet:"game_id" json:"game_id"`
	GS       bool   `csv:"GS" parquet:"GS" json:"GS"`
	CG       bool   `csv:"CG" parquet:"CG" json:"CG"`
	SHO      bool   `csv:"SHO" parquet:"SHO" json:"SHO"`
	GF       bool   `csv:"GF" parquet:"GF" json:"GF"`
	IPouts   uint32 `csv:"IPouts" parquet:"IPouts" json:"IPouts"`
	AB       uint32 `csv:"AB" parquet:"AB" json:"AB"`
	BF       uint32 `csv:"BF" parquet:"BF" json:"BF"`
	H        uint32 `csv:"H" parquet:"H" json:"H"`
	R        uint32 `csv:"R" parquet:"R" json:"R"`
	ER       uint32 `csv:"ER" parquet:"ER" json:"ER"`
	HR       uint32 `csv:"HR" parquet:"HR" json:"HR"`
	BB       uint32 `csv:"BB" parquet:"BB" json:"BB"`
	IBB      uint32 `csv:"IBB" parquet:"IBB" json:"IBB"`
	SO       uint32 `csv:"SO" parquet:"SO" json:"SO"`
	WP       uint32 `csv:"WP" parquet:"WP" json:"WP"`
	BK       uint32 `csv:"BK" parquet:"BK" json:"BK"`
	HBP      uint32 `csv:"HBP" parquet:"HBP" json:"HBP"`
	GB       uint32 `csv:"GB" parquet:"GB" json:"GB"`
	FB       uint32 `csv:"FB" parquet:"FB" json:"FB"`
	P        uint32 `csv:"P" parquet:"P" json:"P"`
	S        uint32 `csv:"S" parquet:"S" json:"S"`
	Decision string `csv:"decision" parquet:"decision" json:"decision"`
}

// BindVariables binds every column under its header name
func (g PitchingGamelog) BindVariables(s *expr.Scope) error {
	s.SetString("player_id", g.PlayerID)
	s.SetString("game_id", g.GameID)
	s.SetBool("GS", g.GS)
	s.SetBool("CG", g.CG)
	s.SetBool("SHO", g.SHO)
	s.SetBool("GF", g.GF)
	s.SetUint("IPouts", uint64(g.IPouts))
	s.SetUint("AB", uint64(g.AB))
	s.SetUint("BF", uint64(g.BF))
	s.SetUint("H", uint64(g.H))
	s.SetUint("R", uint64(g.R))
	s.SetUint("ER", uint64(g.ER))
	s.SetUint("HR", uint64(g.HR))
	s.SetUint("BB", uint64(g.BB))
	s.SetUint("IBB", uint64(g.IBB))
	s.SetUint("SO", uint64(g.SO))
	s.SetUint("WP", uint64(g.WP))
	s.SetUint("BK", uint64(g.BK))
	s.SetUint("HBP", uint64(g.HBP))
	s.SetUint("GB", uint64(g.GB))
	s.SetUint("FB", uint64(g.FB))
	s.SetUint("P", uint64(g.P))
	s.SetUint("S", uint64(g.S))
	s.SetString("decision", g.Decision)
	return s.Err()
}
