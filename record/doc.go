// Package record defines the baseball record types statcat searches.
//
// Game logs (BattingGamelog, FieldingGamelog, PitchingGamelog) hold one
// player's line in one game. Batting and Pitching are rows of the Lahman
// season tables, and BattingCareer and PitchingCareer are per-player sums of
// those rows built by CollectBattingCareers and CollectPitchingCareers.
//
// Every type implements search.Bindable. Variables are named after the
// column headers of the source files. The Lahman 2B and 3B columns, which
// are not valid identifiers, are exposed as H2 and H3, and the Lahman IPouts
// column as IPOuts. Counting stats bind as uint, rates as double, ids and
// codes as string and the pitching game flags as bool.
package record
