// core/engine/invalid.go
package engine

import "seqstat-core/alphabet"

// InvalidBase is one off-alphabet byte and where it sits.
type InvalidBase struct {
	Pos  int    `json:"pos"`
	Base string `json:"base"`
}

// InvalidReport lists every off-alphabet byte of a sequence, left to right.
type InvalidReport struct {
	NumInvalid int           `json:"num_invalid"`
	Bases      []InvalidBase `json:"invalid_bases"`
}

// InvalidBases scans seq for bytes outside the alphabet. It cannot fail; a
// fully valid sequence yields an empty report.
func InvalidBases(seq string, a alphabet.Alphabet) InvalidReport {
	var rep InvalidReport
	for i := 0; i < len(seq); i++ {
		if a.Contains(seq[i]) {
			continue
		}
		rep.Bases = append(rep.Bases, InvalidBase{Pos: i, Base: seq[i : i+1]})
	}
	rep.NumInvalid = len(rep.Bases)
	return rep
}
