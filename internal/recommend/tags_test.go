// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import "testing"

func TestBuildTagBlob(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		movie Movie
		want  TagBlob
	}{
		{
			name: "concatenates all sources in order",
			movie: Movie{
				ID:       1,
				Title:    "Test Movie",
				Genres:   []string{"Action", "Science Fiction"},
				Keywords: []string{"space war"},
				Cast:     []string{"Sam Worthington", "Zoe Saldana"},
				Crew: []CrewMember{
					{Name: "James Cameron", Job: "Director"},
					{Name: "Jon Landau", Job: "Producer"},
				},
			},
			want: "action sciencefiction spacewar samworthington zoesaldana jamescameron",
		},
		{
			name: "caps cast at top three",
			movie: Movie{
				Cast: []string{"First Actor", "Second Actor", "Third Actor", "Fourth Actor"},
			},
			want: "firstactor secondactor thirdactor",
		},
		{
			name: "keeps every director credit",
			movie: Movie{
				Crew: []CrewMember{
					{Name: "Lana Wachowski", Job: "Director"},
					{Name: "Lilly Wachowski", Job: "Director"},
				},
			},
			want: "lanawachowski lillywachowski",
		},
		{
			name: "ignores non-director crew",
			movie: Movie{
				Crew: []CrewMember{
					{Name: "Some Editor", Job: "Editor"},
					{Name: "Some Writer", Job: "Writer"},
				},
			},
			want: "",
		},
		{
			name:  "empty movie yields empty blob",
			movie: Movie{ID: 7, Title: "Bare"},
			want:  "",
		},
		{
			name: "collapses underscores and mixed whitespace",
			movie: Movie{
				Keywords: []string{"based_on novel", "dystopia\tfuture"},
			},
			want: "basedonnovel dystopiafuture",
		},
		{
			name: "lowercases everything",
			movie: Movie{
				Genres: []string{"DRAMA"},
				Cast:   []string{"McKenzie FOY"},
			},
			want: "drama mckenziefoy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTagBlob(tt.movie, cfg)
			if got != tt.want {
				t.Errorf("BuildTagBlob() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildTagBlob_TopCastZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopCast = 0

	m := Movie{
		Genres: []string{"Horror"},
		Cast:   []string{"Anyone At All"},
	}

	got := BuildTagBlob(m, cfg)
	if got != "horror" {
		t.Errorf("BuildTagBlob() with TopCast=0 = %q, want %q", got, "horror")
	}
}

func TestBuildTagBlob_CustomDirectorJob(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DirectorJob = "Regisseur"

	m := Movie{
		Crew: []CrewMember{
			{Name: "Wim Wenders", Job: "Regisseur"},
			{Name: "Other Person", Job: "Director"},
		},
	}

	got := BuildTagBlob(m, cfg)
	if got != "wimwenders" {
		t.Errorf("BuildTagBlob() = %q, want %q", got, "wimwenders")
	}
}

func TestBuildTagBlobs(t *testing.T) {
	cfg := DefaultConfig()
	movies := []Movie{
		{Genres: []string{"Action"}},
		{},
		{Genres: []string{"Drama"}},
	}

	blobs := BuildTagBlobs(movies, cfg)
	if len(blobs) != len(movies) {
		t.Fatalf("len(blobs) = %d, want %d", len(blobs), len(movies))
	}

	want := []TagBlob{"action", "", "drama"}
	for i := range want {
		if blobs[i] != want[i] {
			t.Errorf("blobs[%d] = %q, want %q", i, blobs[i], want[i])
		}
	}
}

func TestAtomizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Science Fiction", "sciencefiction"},
		{"action", "action"},
		{"based_on_comic", "basedoncomic"},
		{"  padded  ", "padded"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := atomizeLabel(tt.in); got != tt.want {
			t.Errorf("atomizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
