package language

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Profile describes how solutions written in a language are stored locally.
type Profile struct {
	// Extension is the file extension, without the leading dot.
	Extension string `json:"extension"`

	// CommentSyntax is the line comment marker used for the solution header.
	CommentSyntax string `json:"commentSyntax"`
}

// Profiles maps a LeetCode language identifier (e.g. "python3") to its
// Profile.
type Profiles map[string]Profile

var builtin = Profiles{
	"bash":       {Extension: "sh", CommentSyntax: "#"},
	"c":          {Extension: "c", CommentSyntax: "//"},
	"cpp":        {Extension: "cpp", CommentSyntax: "//"},
	"csharp":     {Extension: "cs", CommentSyntax: "//"},
	"elixir":     {Extension: "ex", CommentSyntax: "#"},
	"erlang":     {Extension: "erl", CommentSyntax: "%"},
	"golang":     {Extension: "go", CommentSyntax: "//"},
	"java":       {Extension: "java", CommentSyntax: "//"},
	"javascript": {Extension: "js", CommentSyntax: "//"},
	"kotlin":     {Extension: "kt", CommentSyntax: "//"},
	"php":        {Extension: "php", CommentSyntax: "//"},
	"python":     {Extension: "py", CommentSyntax: "#"},
	"python3":    {Extension: "py", CommentSyntax: "#"},
	"racket":     {Extension: "rkt", CommentSyntax: ";"},
	"ruby":       {Extension: "rb", CommentSyntax: "#"},
	"rust":       {Extension: "rs", CommentSyntax: "//"},
	"scala":      {Extension: "scala", CommentSyntax: "//"},
	"swift":      {Extension: "swift", CommentSyntax: "//"},
	"typescript": {Extension: "ts", CommentSyntax: "//"},
}

// Default returns a copy of the built-in profiles.
func Default() Profiles {
	profiles := Profiles{}
	for lang, p := range builtin {
		profiles[lang] = p
	}
	return profiles
}

// With returns a copy of `profiles` extended by `additions`. The table is
// append-only: additions that collide with an existing language are ignored.
func (profiles Profiles) With(additions Profiles) Profiles {
	merged := Profiles{}
	for lang, p := range profiles {
		merged[lang] = p
	}

	for _, lang := range sortedKeys(additions) {
		if _, ok := merged[lang]; ok {
			log.WithField("lang", lang).Warn(
				"Ignoring configured language profile that would override a built-in one")
			continue
		}
		merged[lang] = additions[lang]
	}
	return merged
}

// Lookup returns the profile for `lang`, if one exists.
func (profiles Profiles) Lookup(lang string) (Profile, bool) {
	p, ok := profiles[lang]
	return p, ok
}

func sortedKeys(profiles Profiles) []string {
	var keys []string
	for k := range profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
