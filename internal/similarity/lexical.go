// Package similarity scores how alike two text bodies are. It offers a
// lexical TF-IDF scorer and a pluggable semantic strategy with an embedding
// variant and a word-overlap fallback. All scores are in [0, 100].
package similarity

import (
	"math"
	"strings"
	"unicode"
)

// LexicalScore fits a TF-IDF model over exactly the two input documents and
// returns their cosine similarity scaled to [0, 100]. The vocabulary is the
// union of terms in these two documents only, which keeps the score a pure
// function of its inputs. Either input empty or whitespace-only returns 0.
func LexicalScore(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0.0
	}

	countsA := termCounts(Tokenize(a))
	countsB := termCounts(Tokenize(b))
	if len(countsA) == 0 || len(countsB) == 0 {
		return 0.0
	}

	// Document frequency over the two-document corpus, with smoothing:
	// idf = ln((1+n)/(1+df)) + 1, n = 2.
	vocabulary := make(map[string]struct{}, len(countsA)+len(countsB))
	for t := range countsA {
		vocabulary[t] = struct{}{}
	}
	for t := range countsB {
		vocabulary[t] = struct{}{}
	}

	vecA := make(map[string]float64, len(countsA))
	vecB := make(map[string]float64, len(countsB))
	for term := range vocabulary {
		df := 0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1.0
		if countsA[term] > 0 {
			vecA[term] = float64(countsA[term]) * idf
		}
		if countsB[term] > 0 {
			vecB[term] = float64(countsB[term]) * idf
		}
	}

	return clampScore(cosine(vecA, vecB) * 100.0)
}

// Tokenize splits text into lower-case terms of at least two characters.
// '+', '#', '.' and '-' count as word characters so terms like "c++", "c#",
// "node.js" and "scikit-learn" survive; trailing dots are stripped.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 2 {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '-' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// cosine computes cosine similarity between two sparse vectors.
func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, va := range a {
		normA += va * va
		if vb, ok := b[term]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clampScore bounds a score to [0, 100].
func clampScore(s float64) float64 {
	if s < 0 {
		return 0.0
	}
	if s > 100 {
		return 100.0
	}
	return s
}
