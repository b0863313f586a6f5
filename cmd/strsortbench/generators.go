package main

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Generator produces n keys for a benchmark run. Implementations are
// pure functions of (n, r) except the file-backed generator, which reads
// from disk instead of generating.
type Generator func(n int, r *rand.Rand) ([]string, error)

// generators is the registry the CLI's --generator flag resolves against,
// replacing the teacher lineage's enum-with-per-variant-method pattern
// (section 9's design note) with a plain name-keyed map.
var generators = map[string]Generator{
	"random-ascii":   randomPrintableASCII,
	"english-words":  pseudoEnglishWords,
	"repeated":       repeatedStrings,
	"cyclic":         cyclicRepeats,
	"genome":         genomeAlphabet,
	"small-alphabet": smallAlphabet,
	"killer":         medianOfThreeKiller,
}

const printableLo, printableHi = 0x20, 0x7e // space .. '~'

func randomPrintableASCII(n int, r *rand.Rand) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		l := 20 + r.Intn(80) // lengths 20..99 bytes
		b := make([]byte, l)
		for j := range b {
			b[j] = byte(printableLo + r.Intn(printableHi-printableLo+1))
		}
		out[i] = string(b)
	}
	return out, nil
}

// commonSyllables stands in for a pseudo-English word generator: words
// are built by concatenating a handful of consonant-vowel syllables,
// giving a realistic length and prefix-sharing distribution without
// requiring an actual dictionary on disk.
var commonSyllables = []string{
	"ba", "be", "ca", "co", "de", "di", "el", "en", "er", "fa",
	"ga", "in", "la", "le", "li", "ma", "mi", "na", "on", "or",
	"pa", "re", "ri", "sa", "se", "ta", "ti", "to", "un", "ve",
}

func pseudoEnglishWords(n int, r *rand.Rand) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		syllables := 1 + r.Intn(4)
		var sb strings.Builder
		for s := 0; s < syllables; s++ {
			sb.WriteString(commonSyllables[r.Intn(len(commonSyllables))])
		}
		out[i] = sb.String()
	}
	return out, nil
}

// repeatedStrings returns n copies of a single random string -- scenario
// 3 from section 8 ("all equal; burstsort must not infinite-loop").
func repeatedStrings(n int, r *rand.Rand) ([]string, error) {
	l := 100
	b := make([]byte, l)
	for j := range b {
		b[j] = byte('A' + r.Intn(26))
	}
	s := string(b)
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out, nil
}

// cyclicRepeats cycles through a small fixed pool of strings, exercising
// heavy duplication without every key being bit-identical (unlike
// repeatedStrings).
func cyclicRepeats(n int, r *rand.Rand) ([]string, error) {
	poolSize := 1 + r.Intn(32)
	pool := make([]string, poolSize)
	for i := range pool {
		l := 10 + r.Intn(40)
		b := make([]byte, l)
		for j := range b {
			b[j] = byte('a' + r.Intn(26))
		}
		pool[i] = string(b)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = pool[i%poolSize]
	}
	return out, nil
}

// genomeAlphabet draws from the 4-letter DNA alphabet (ACGT), stressing
// the burst trie's fanout on a tiny effective alphabet with long shared
// prefixes.
func genomeAlphabet(n int, r *rand.Rand) ([]string, error) {
	const alphabet = "ACGT"
	out := make([]string, n)
	for i := range out {
		l := 50 + r.Intn(50)
		b := make([]byte, l)
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out, nil
}

// smallAlphabet draws from a fixed 9-symbol alphabet, a middle ground
// between genome's 4 symbols and the full byte range.
func smallAlphabet(n int, r *rand.Rand) ([]string, error) {
	const alphabet = "abcdefghi"
	out := make([]string, n)
	for i := range out {
		l := 20 + r.Intn(30)
		b := make([]byte, l)
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out, nil
}

// medianOfThreeKiller builds the classic adversarial input that makes
// naive median-of-three pivot selection degrade toward O(n^2): an
// organ-pipe-like sequence mirrored around the middle (so most values
// appear twice) whose first and last elements are both the minimum, so
// the top-level median of (first, middle, last) is the smallest value.
// Requires n to be odd (the construction assumes a single middle
// element); an even n is rejected with an error, since this generator
// exists to probe a specific worst case, not to generate arbitrary-sized
// data.
func medianOfThreeKiller(n int, r *rand.Rand) ([]string, error) {
	if n%2 == 0 {
		return nil, fmt.Errorf("strsortbench: median-of-three killer generator requires an odd size, got %d", n)
	}
	vals := make([]int, n)
	// Place the minimum at both ends, the median in the middle, and
	// low/high values alternately in between, mirrored on each side.
	mid := n / 2
	for i := 0; i < mid; i++ {
		if i%2 == 0 {
			vals[i] = i
		} else {
			vals[i] = n - 1 - i
		}
	}
	vals[mid] = mid
	for i := mid + 1; i < n; i++ {
		j := n - 1 - i
		if j%2 == 0 {
			vals[i] = j
		} else {
			vals[i] = n - 1 - j
		}
	}
	out := make([]string, n)
	for i, v := range vals {
		out[i] = fmt.Sprintf("%08d", v)
	}
	return out, nil
}

// fileBacked reads newline-separated keys from path, transparently
// decompressing .gz or .zst corpora via klauspost/compress. n caps the
// number of lines read (0 means read the whole file).
func fileBacked(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("strsortbench: opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("strsortbench: gzip %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("strsortbench: zstd %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		out = append(out, sc.Text())
		if n > 0 && len(out) >= n {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("strsortbench: reading %q: %w", path, err)
	}
	if len(out) < 2 {
		return nil, fmt.Errorf("strsortbench: file %q is too short to benchmark (%d lines)", path, len(out))
	}
	return out, nil
}
