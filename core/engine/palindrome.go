// core/engine/palindrome.go
package engine

// Palindrome is one reverse-symmetric substring hit. Pos is the start index
// within the source sequence and Length the hit's size in bytes.
type Palindrome struct {
	Pos    int `json:"pos"`
	Length int `json:"length"`
}

// Substring returns the palindrome's text within its source sequence.
func (p Palindrome) Substring(seq string) string { return seq[p.Pos : p.Pos+p.Length] }

// PalindromeReport collects one sequence's palindromes in discovery order.
type PalindromeReport struct {
	NumPalindromes int          `json:"num_palindromes"`
	Palindromes    []Palindrome `json:"palindromes"`
}

// Palindromes finds reverse-symmetric substrings by expanding around every
// center: the odd center (i,i) first, then the even center (i,i+1).
// Expansion continues while the flanking bytes match, recording every window
// that is strictly longer than minSubstringLen and holds at least minBases
// distinct bytes. Expansion does not stop at the first qualifying window, so
// nested palindromes around one center are all reported, innermost first.
func Palindromes(seq string, minSubstringLen, minBases int) PalindromeReport {
	var rep PalindromeReport
	expand := func(lo, hi int) {
		for lo >= 0 && hi < len(seq) && seq[lo] == seq[hi] {
			if n := hi - lo + 1; n > minSubstringLen && distinctBytes(seq[lo:hi+1]) >= minBases {
				rep.Palindromes = append(rep.Palindromes, Palindrome{Pos: lo, Length: n})
			}
			lo--
			hi++
		}
	}
	for i := 0; i < len(seq); i++ {
		expand(i, i)
		expand(i, i+1)
	}
	rep.NumPalindromes = len(rep.Palindromes)
	return rep
}

func distinctBytes(s string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			n++
		}
	}
	return n
}
