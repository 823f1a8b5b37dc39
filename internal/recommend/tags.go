// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import "strings"

// TagBlob is the normalized bag-of-words text derived from one movie's
// metadata. Exactly one blob exists per movie, in catalog order.
type TagBlob string

// BuildTagBlob flattens one movie's metadata into a single lowercase
// tag string. It concatenates genre labels, keyword labels, the top
// cast names, and director credits, in that order.
//
// Multi-word labels are collapsed into one atomic token ("Science
// Fiction" becomes "sciencefiction") so the tokenizer cannot split an
// entity into meaningless halves. A movie with no metadata in any
// category yields an empty blob, never an error.
//
// Pure function over one record: no allocation is shared with the
// input and the input is never mutated.
func BuildTagBlob(m Movie, cfg *Config) TagBlob {
	est := len(m.Genres) + len(m.Keywords) + cfg.TopCast + 1
	labels := make([]string, 0, est)

	labels = append(labels, m.Genres...)
	labels = append(labels, m.Keywords...)

	cast := m.Cast
	if cfg.TopCast >= 0 && len(cast) > cfg.TopCast {
		cast = cast[:cfg.TopCast]
	}
	labels = append(labels, cast...)

	for _, cm := range m.Crew {
		if cm.Job == cfg.DirectorJob {
			labels = append(labels, cm.Name)
		}
	}

	tokens := make([]string, 0, len(labels))
	for _, label := range labels {
		tok := atomizeLabel(label)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return TagBlob(strings.Join(tokens, " "))
}

// BuildTagBlobs derives one blob per movie, preserving catalog order.
func BuildTagBlobs(movies []Movie, cfg *Config) []TagBlob {
	blobs := make([]TagBlob, len(movies))
	for i := range movies {
		blobs[i] = BuildTagBlob(movies[i], cfg)
	}
	return blobs
}

// atomizeLabel lowercases a label and strips internal whitespace and
// underscores so the whole entity survives tokenization as one token.
func atomizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range strings.ToLower(label) {
		switch r {
		case ' ', '\t', '\n', '\r', '_':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
