package sampleSheet

var complement = map[rune]rune{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
}

// ReverseComplement reverses seq and swaps A<->T, C<->G.
// other characters are kept as is
func ReverseComplement(seq string) string {
	var bases = []rune(seq)
	var n = len(bases)
	var rc = make([]rune, n)
	for i, b := range bases {
		if c, ok := complement[b]; ok {
			b = c
		}
		rc[n-1-i] = b
	}
	return string(rc)
}
