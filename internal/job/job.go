package job

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"gopkg.in/yaml.v3"
)

const (
	OpReplaceColumns = "replace-columns"
	OpAddPercent     = "add-percent"
	OpInsertText     = "insert-text"
	OpSetDate        = "set-date"
	OpSetText        = "set-text"
	OpReplaceText    = "replace-text"
)

// Job is an ordered list of edits applied to one .dbf file.
type Job struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Encoding string `yaml:"encoding"`
	Steps    []Step `yaml:"steps"`
}

// Step is one batch edit. Which fields are used depends on Op.
type Step struct {
	Op          string  `yaml:"op"`
	Field       string  `yaml:"field"`
	Src         string  `yaml:"src"`
	Dst         string  `yaml:"dst"`
	Percent     float64 `yaml:"percent"`
	Offset      int     `yaml:"offset"`
	Text        string  `yaml:"text"`
	Old         string  `yaml:"old"`
	Replacement string  `yaml:"replacement"`
	Day         int     `yaml:"day"`
	Month       int     `yaml:"month"`
	Year        int     `yaml:"year"`
}

// LoadJob reads a job file. Relative input and output paths are resolved against the
// directory of the job file. An empty output means the input is overwritten.
func LoadJob(jobPath string) (*Job, error) {
	data, err := os.ReadFile(jobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}

	dir := filepath.Dir(jobPath)
	if job.Input != "" && !filepath.IsAbs(job.Input) {
		job.Input = filepath.Join(dir, job.Input)
	}
	if job.Output == "" {
		job.Output = job.Input
	} else if !filepath.IsAbs(job.Output) {
		job.Output = filepath.Join(dir, job.Output)
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Validate checks the job before any file is touched.
func (j *Job) Validate() error {
	if j.Input == "" {
		return errors.New("job has no input file")
	}
	if len(j.Steps) == 0 {
		return errors.New("job has no steps")
	}
	for i, step := range j.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) Validate() error {
	switch s.Op {
	case OpReplaceColumns:
		if s.Src == "" || s.Dst == "" {
			return fmt.Errorf("%s needs src and dst", s.Op)
		}
	case OpAddPercent, OpInsertText, OpSetText:
		if s.Field == "" {
			return fmt.Errorf("%s needs field", s.Op)
		}
	case OpReplaceText:
		if s.Field == "" || s.Old == "" {
			return fmt.Errorf("%s needs field and old", s.Op)
		}
	case OpSetDate:
		if s.Month < 1 || s.Month > 12 || s.Day < 1 || s.Day > 31 {
			return fmt.Errorf("%s: invalid date %d-%d-%d", s.Op, s.Year, s.Month, s.Day)
		}
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// Apply runs the step against every active record of table.
func (s Step) Apply(table *godbf.Table) error {
	switch s.Op {
	case OpReplaceColumns:
		return table.ReplaceColumns(s.Src, s.Dst)
	case OpAddPercent:
		return table.AddPercent(s.Field, s.Percent)
	case OpInsertText:
		return table.InsertText(s.Field, s.Offset, s.Text)
	case OpSetDate:
		return table.SetDate(s.Day, s.Month, s.Year)
	case OpSetText:
		return table.SetText(s.Field, s.Text)
	case OpReplaceText:
		return table.ReplaceText(s.Field, s.Old, s.Replacement)
	}
	return fmt.Errorf("unknown op %q", s.Op)
}

// Run loads the input, applies every step in order and saves the result. Edits are not
// atomic: when a step fails nothing is saved, but earlier steps already changed the
// in-memory table.
func (j *Job) Run(defaultEncoding string) (*godbf.Table, error) {
	encoding := j.Encoding
	if encoding == "" {
		encoding = defaultEncoding
	}
	table, err := godbf.LoadWithEncoding(j.Input, encoding)
	if err != nil {
		return nil, err
	}
	for i, step := range j.Steps {
		if err := step.Apply(table); err != nil {
			return table, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	if j.Output == table.FileName() {
		err = table.SaveInPlace()
	} else {
		err = table.Save(j.Output)
	}
	if err != nil {
		return table, err
	}
	return table, nil
}
