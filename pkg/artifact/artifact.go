package artifact

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/leetsync/pkg/atomicfile"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/language"
	"github.com/sidkik/leetsync/pkg/leetcode"
)

const (
	// ProblemsDir is the directory, relative to the output root, that holds
	// one directory per problem.
	ProblemsDir = "problems"

	// MetadataFilename is the name of the problem metadata artifact.
	MetadataFilename = "README.md"
)

// Solution is a submission joined with the profile of its language.
type Solution struct {
	leetcode.Submission
	language.Profile
}

// Filename returns the name of the solution artifact. It only depends on the
// submission ID, so rewriting a submission always targets the same file.
func (s Solution) Filename() string {
	return fmt.Sprintf("solution_%d.%s", s.ID, s.Extension)
}

// ProblemDir returns the directory, relative to the output root, that holds
// the artifacts for a problem.
func ProblemDir(questionID int, titleSlug string) string {
	return filepath.Join(ProblemsDir, fmt.Sprintf("%04d.%s", questionID, slug.Make(titleSlug)))
}

// Writer materializes problems and solutions on the local filesystem. Writes
// are idempotent: writing the same record twice leaves a single, identical
// file.
type Writer interface {
	// HasProblem returns whether the metadata artifact for the problem in
	// `dir` already exists.
	HasProblem(dir string) (bool, error)

	WriteProblem(dir string, problem leetcode.Problem) error
	WriteSolution(dir string, solution Solution) error
}

// Templates overrides the default templates. Empty fields keep the default.
type Templates struct {
	Solution string `json:"solution,omitempty"`
	Readme   string `json:"readme,omitempty"`
}

type fsWriter struct {
	fs       afero.Fs
	root     string
	solution *template.Template
	readme   *template.Template
}

// New creates a Writer that writes under `root`.
func New(fs afero.Fs, root string, templates Templates) (Writer, error) {
	if templates.Solution == "" {
		templates.Solution = DefaultSolutionTemplate
	}
	if templates.Readme == "" {
		templates.Readme = DefaultReadmeTemplate
	}

	solution, err := parseTemplate("solution", templates.Solution)
	if err != nil {
		return nil, err
	}

	readme, err := parseTemplate("readme", templates.Readme)
	if err != nil {
		return nil, err
	}

	return fsWriter{fs: fs, root: root, solution: solution, readme: readme}, nil
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, errors.NewFriendlyError("The %s template could not be parsed:\n%s",
			name, err)
	}
	return tmpl, nil
}

func (w fsWriter) HasProblem(dir string) (bool, error) {
	return afero.Exists(w.fs, filepath.Join(w.root, dir, MetadataFilename))
}

func (w fsWriter) WriteProblem(dir string, problem leetcode.Problem) error {
	return w.write(filepath.Join(dir, MetadataFilename), w.readme, problem)
}

func (w fsWriter) WriteSolution(dir string, solution Solution) error {
	return w.write(filepath.Join(dir, solution.Filename()), w.solution, solution)
}

// write renders the whole artifact in memory before touching the filesystem,
// so a rendering error never leaves a partial file behind.
func (w fsWriter) write(relPath string, tmpl *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.WithContext(err, fmt.Sprintf("render %s", tmpl.Name()))
	}

	changed, err := atomicfile.Write(w.fs, filepath.Join(w.root, relPath), buf.Bytes(), 0644)
	if err != nil {
		return errors.WithContext(err, fmt.Sprintf("write %s", relPath))
	}

	log.WithFields(log.Fields{
		"path":    relPath,
		"changed": changed,
	}).Debug("Wrote artifact")
	return nil
}
