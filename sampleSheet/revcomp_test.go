package sampleSheet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseComplement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		seq  string
		want string
	}{
		{"empty", "", ""},
		{"single", "A", "T"},
		{"palindrome", "GAATTC", "GAATTC"},
		{"adapter", "AGATCGGAAGAGCACACGTCTGAACTCCAGTCA", "TGACTGGAGTTCAGACGTGTGCTCTTCCGATCT"},
		{"i5", "TATAGCCT", "AGGCTATA"},
		{"ambiguous kept", "ACGN", "NCGT"},
		{"lowercase kept", "acgT", "Agca"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ReverseComplement(c.seq), c.name)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	t.Parallel()

	var r = rand.New(rand.NewSource(1))
	var bases = []byte("ACGT")
	for i := 0; i < 200; i++ {
		var seq = make([]byte, r.Intn(40))
		for j := range seq {
			seq[j] = bases[r.Intn(len(bases))]
		}
		assert.Equal(t, string(seq), ReverseComplement(ReverseComplement(string(seq))))
	}
}
