// Package ranking scores resume text against job requirement text with a
// term-weighted vector space and ranks screened candidates by that score.
package ranking

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenRE matches one term: alphanumeric runs that may be joined by interior
// ".", "+" or "#" and end in trailing "+"/"#", so "node.js", "c++" and "c#"
// survive tokenization intact.
var tokenRE = regexp.MustCompile(`[a-z0-9]+(?:[.+#][a-z0-9]+)*[+#]*`)

// tokenize lower-cases the text and splits it into terms, dropping stop
// words.
func tokenize(text string) []string {
	raw := tokenRE.FindAllString(strings.ToLower(text), -1)

	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		if isStopWord(t) {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}

// termCounts maps each term to its occurrence count.
func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// buildVocabulary selects the scoring vocabulary for a two-document corpus:
// all distinct terms, capped at maxFeatures by total corpus count with
// alphabetical tie-breaking so selection is deterministic.
func buildVocabulary(a, b map[string]int, maxFeatures int) []string {
	totals := make(map[string]int, len(a)+len(b))
	for t, c := range a {
		totals[t] += c
	}
	for t, c := range b {
		totals[t] += c
	}

	vocab := make([]string, 0, len(totals))
	for t := range totals {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if totals[vocab[i]] != totals[vocab[j]] {
			return totals[vocab[i]] > totals[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if maxFeatures > 0 && len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	// Stable term order for the vector dimensions.
	sort.Strings(vocab)
	return vocab
}

// tfidfVector builds the term-weight vector for one document over the given
// vocabulary. Weights are raw term frequency scaled by smoothed inverse
// document frequency over the two-document corpus:
//
//	idf(t) = ln((1+n)/(1+df(t))) + 1, with n = 2
//
// so a term present in both documents still carries weight 1 per occurrence.
func tfidfVector(counts map[string]int, vocab []string, df map[string]int) []float64 {
	const numDocs = 2

	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		tf := float64(counts[term])
		if tf == 0 {
			continue
		}
		idf := math.Log(float64(1+numDocs)/float64(1+df[term])) + 1
		vec[i] = tf * idf
	}
	return vec
}

// documentFrequencies counts, per term, how many of the two documents
// contain it.
func documentFrequencies(a, b map[string]int, vocab []string) map[string]int {
	df := make(map[string]int, len(vocab))
	for _, term := range vocab {
		if a[term] > 0 {
			df[term]++
		}
		if b[term] > 0 {
			df[term]++
		}
	}
	return df
}

// normalize scales the vector to unit length. Returns false for a zero
// vector, which cannot be normalized.
func normalize(vec []float64) bool {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return false
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return true
}

// cosine returns the cosine of the angle between two equal-length vectors.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
