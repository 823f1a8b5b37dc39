// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// stopwordsRaw is the embedded English stopword list, one lowercase
// word per line. It is the classic Glasgow IR list, frozen here so
// vocabulary construction cannot drift between builds.
//
//go:embed stopwords.txt
var stopwordsRaw string

var stopwords = loadStopwords(stopwordsRaw)

func loadStopwords(raw string) map[string]struct{} {
	set := make(map[string]struct{}, 320)
	for _, line := range strings.Split(raw, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// isStopword reports whether a normalized token is on the embedded
// stopword list. Consulted only during vocabulary selection; vectors
// ignore out-of-vocabulary tokens anyway.
func isStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}

// normalizeTokens splits a blob on whitespace and stems every token
// with the Snowball English stemmer. Stemming is the single
// normalization point of the pipeline: vocabulary construction and
// vectorization both consume this output, so a token can never stem
// one way at build time and another way later.
//
// Tokens containing no letter (bare years, rating codes) are dropped
// unless cfg.KeepNonAlpha is set. Snowball's own stopword handling is
// disabled so recognized stopwords pass through unstemmed and the
// embedded list can match them verbatim.
func normalizeTokens(blob TagBlob, cfg *Config) []string {
	fields := strings.Fields(string(blob))
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if !cfg.KeepNonAlpha && !hasLetter(tok) {
			continue
		}
		out = append(out, english.Stem(tok, false))
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
