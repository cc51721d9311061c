package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListCandidates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "notes.log", ".hidden"} {
		writeFile(t, dir, name, "x")
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, ".gitignore", "*.log\n")

	cases := []struct {
		name string
		opts ListOptions
		want []string
	}{
		{
			name: "defaults skip hidden and ignored",
			opts: ListOptions{},
			want: []string{"a.txt", "b.txt"},
		},
		{
			name: "hidden included on request",
			opts: ListOptions{ShowHidden: true},
			want: []string{".gitignore", ".hidden", "a.txt", "b.txt"},
		},
		{
			name: "no-ignore keeps ignored files",
			opts: ListOptions{NoIgnore: true},
			want: []string{"a.txt", "b.txt", "notes.log"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ListCandidates(dir, tc.opts)
			if err != nil {
				t.Fatalf("ListCandidates: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("entry %d = %q, want %q (name order)", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestListCandidatesMissingDir(t *testing.T) {
	if _, err := ListCandidates(filepath.Join(t.TempDir(), "nope"), ListOptions{}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFilterByGlob(t *testing.T) {
	files := []string{"IMG_1.png", "IMG_2.png", "readme.md"}

	got := FilterByGlob(files, "*_*.png")
	if len(got) != 2 || got[0] != "IMG_1.png" || got[1] != "IMG_2.png" {
		t.Errorf("FilterByGlob = %v, want the two pngs", got)
	}

	// "*" and "" are pass-through.
	if got := FilterByGlob(files, "*"); len(got) != 3 {
		t.Errorf("glob * filtered to %v", got)
	}

	// A malformed glob must not drop candidates; the matcher decides.
	if got := FilterByGlob(files, "[bad"); len(got) != 3 {
		t.Errorf("bad glob filtered to %v, want all kept", got)
	}
}

func TestMatchCandidates(t *testing.T) {
	cp, err := Compile("[Prefix]_[NR].png")
	if err != nil {
		t.Fatal(err)
	}
	matches := MatchCandidates([]string{"IMG_8557.png", "readme.md", "IMG_8558.png"}, cp)

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Name != "IMG_8557.png" || matches[1].Name != "IMG_8558.png" {
		t.Errorf("matches = %v, want order preserved", matches)
	}
	if matches[0].Captures["NR"] != "8557" {
		t.Errorf("NR capture = %q, want 8557", matches[0].Captures["NR"])
	}
}
