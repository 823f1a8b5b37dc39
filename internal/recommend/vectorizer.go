// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import "sort"

// Vocabulary is the fixed term space of a model. Term position is the
// feature dimension: column j of every feature vector counts terms[j].
// Immutable after construction.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// Size returns the number of terms.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}

// Terms returns a copy of the ordered term list.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the feature dimension of a term.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// FeatureMatrix holds one count vector per movie. Rows follow catalog
// order, columns follow vocabulary order.
type FeatureMatrix [][]float64

// Rows returns the number of movies.
func (fm FeatureMatrix) Rows() int {
	return len(fm)
}

// Cols returns the feature dimensionality.
func (fm FeatureMatrix) Cols() int {
	if len(fm) == 0 {
		return 0
	}
	return len(fm[0])
}

// BuildVectors turns the blob corpus into a vocabulary and count
// vectors over it.
//
// Vocabulary selection counts every normalized non-stopword token
// across the corpus and keeps the top cfg.MaxFeatures by descending
// frequency. Ties break by first occurrence order, so two builds of
// the same corpus always select the same terms in the same order.
//
// Vectorization then counts, per movie, occurrences of vocabulary
// terms only. A movie whose blob shares nothing with the vocabulary
// gets an all-zero row; that is valid input downstream, not an error.
func BuildVectors(blobs []TagBlob, cfg *Config) (*Vocabulary, FeatureMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(blobs) == 0 {
		return nil, nil, newConfigErr("corpus", "must not be empty")
	}

	tokenized := make([][]string, len(blobs))
	for i, blob := range blobs {
		tokenized[i] = normalizeTokens(blob, cfg)
	}

	vocab := selectVocabulary(tokenized, cfg.MaxFeatures)

	matrix := make(FeatureMatrix, len(tokenized))
	for i, tokens := range tokenized {
		row := make([]float64, len(vocab.terms))
		for _, tok := range tokens {
			if j, ok := vocab.index[tok]; ok {
				row[j]++
			}
		}
		matrix[i] = row
	}

	return vocab, matrix, nil
}

// selectVocabulary picks the top maxFeatures tokens by global
// frequency. firstSeen carries the corpus-wide position of each
// token's first occurrence, which is the deterministic tie-break.
func selectVocabulary(tokenized [][]string, maxFeatures int) *Vocabulary {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seq := 0

	for _, tokens := range tokenized {
		for _, tok := range tokens {
			if isStopword(tok) {
				continue
			}
			if _, seen := counts[tok]; !seen {
				firstSeen[tok] = seq
			}
			counts[tok]++
			seq++
		}
	}

	terms := make([]string, 0, len(counts))
	for tok := range counts {
		terms = append(terms, tok)
	}
	sort.Slice(terms, func(a, b int) bool {
		ta, tb := terms[a], terms[b]
		if counts[ta] != counts[tb] {
			return counts[ta] > counts[tb]
		}
		return firstSeen[ta] < firstSeen[tb]
	})

	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}

	return &Vocabulary{terms: terms, index: index}
}
