package plugin

import (
	"strings"
	"testing"
)

func TestInfo_Validate(t *testing.T) {
	valid := Info{
		Name:      "Example",
		Version:   "1.0.0",
		Platforms: []string{"Linux", "Windows"},
	}

	tests := []struct {
		name    string
		mutate  func(*Info)
		problem string
	}{
		{"valid", func(i *Info) {}, ""},
		{"empty name", func(i *Info) { i.Name = "" }, "name"},
		{"sentinel name", func(i *Info) { i.Name = SentinelName }, "name"},
		{"no platforms", func(i *Info) { i.Platforms = nil }, "platform"},
		{"empty version", func(i *Info) { i.Version = "" }, "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := valid
			info.Platforms = append([]string(nil), valid.Platforms...)
			tt.mutate(&info)

			problems := info.Validate()
			if tt.problem == "" {
				if len(problems) != 0 {
					t.Errorf("Validate() = %v, want none", problems)
				}
				return
			}
			found := false
			for _, p := range problems {
				if strings.Contains(strings.ToLower(p), tt.problem) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want a %q problem", problems, tt.problem)
			}
		})
	}
}

func TestInfo_SupportsPlatform(t *testing.T) {
	info := Info{Platforms: []string{"Linux", "Windows"}}

	if !info.SupportsPlatform("Linux") {
		t.Error("SupportsPlatform(Linux) = false")
	}
	if info.SupportsPlatform("Darwin") {
		t.Error("SupportsPlatform(Darwin) = true")
	}
	if !info.Compatible() == info.SupportsPlatform(CurrentPlatform()) {
		t.Error("Compatible() disagrees with SupportsPlatform(CurrentPlatform())")
	}
}

func TestInfo_Authors(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want []string
		text string
	}{
		{
			name: "authors list preferred",
			info: Info{Author: "Old", Authors: []string{"Anna", "Ben"}},
			want: []string{"Anna", "Ben"},
			text: "Anna, Ben",
		},
		{
			name: "legacy author field",
			info: Info{Author: "Solo"},
			want: []string{"Solo"},
			text: "Solo",
		},
		{
			name: "no authors",
			info: Info{},
			want: nil,
			text: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.info.AuthorList()
			if len(got) != len(tt.want) {
				t.Fatalf("AuthorList() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("AuthorList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
			if text := tt.info.AuthorText(); text != tt.text {
				t.Errorf("AuthorText() = %q, want %q", text, tt.text)
			}
		})
	}
}

func TestCurrentPlatform(t *testing.T) {
	p := CurrentPlatform()
	if p == "" {
		t.Fatal("CurrentPlatform() is empty")
	}
	if p[0] < 'A' || p[0] > 'Z' {
		t.Errorf("CurrentPlatform() = %q, want a capitalized name", p)
	}
}
