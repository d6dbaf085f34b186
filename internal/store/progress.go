package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidProgress is returned when the saved progress document exists
// but does not have the expected shape.
var ErrInvalidProgress = errors.New("invalid progress file")

// Progress is the learner's durable position in the curriculum.
type Progress struct {
	CurrentLesson    string         `json:"current_lesson"`
	CompletedLessons []string       `json:"completed_lessons"`
	HintCounts       map[string]int `json:"hint_counts"`
	StartedAt        Timestamp      `json:"started_at"`
}

// isoLayouts are the accepted started_at forms after RFC 3339: ISO-8601
// local times without an offset, as older progress files carry.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a time that decodes RFC 3339 as well as offset-less
// ISO-8601. A decoded value is written back exactly as it was read.
type Timestamp struct {
	time.Time
	raw string
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.raw != "" {
		return json.Marshal(t.raw)
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	for _, layout := range isoLayouts {
		if err == nil {
			break
		}
		parsed, err = time.ParseInLocation(layout, s, time.Local)
	}
	if err != nil {
		return fmt.Errorf("unrecognized timestamp %q", s)
	}
	t.Time = parsed
	t.raw = s
	return nil
}

// NewProgress returns fresh progress positioned at firstLesson.
func NewProgress(firstLesson string, now time.Time) *Progress {
	return &Progress{
		CurrentLesson:    firstLesson,
		CompletedLessons: []string{},
		HintCounts:       map[string]int{},
		StartedAt:        Timestamp{Time: now},
	}
}

// MarkCompleted adds id to the completed set. Returns false if it was
// already present.
func (p *Progress) MarkCompleted(id string) bool {
	if p.IsCompleted(id) {
		return false
	}
	p.CompletedLessons = append(p.CompletedLessons, id)
	return true
}

// IsCompleted reports whether id has been completed.
func (p *Progress) IsCompleted(id string) bool {
	return slices.Contains(p.CompletedLessons, id)
}

// RecordHint increments the hint tally for a lesson.
func (p *Progress) RecordHint(id string) {
	if p.HintCounts == nil {
		p.HintCounts = map[string]int{}
	}
	p.HintCounts[id]++
}

// Clone returns a deep copy.
func (p *Progress) Clone() *Progress {
	c := *p
	c.CompletedLessons = slices.Clone(p.CompletedLessons)
	c.HintCounts = make(map[string]int, len(p.HintCounts))
	for k, v := range p.HintCounts {
		c.HintCounts[k] = v
	}
	return &c
}

// ProgressRepo loads and saves the single progress record.
type ProgressRepo interface {
	// Load returns the saved progress, or nil if none has been saved yet.
	Load(ctx context.Context) (*Progress, error)

	// Save replaces the saved progress.
	Save(ctx context.Context, p *Progress) error
}

// FileProgressRepo stores progress as an indented JSON document.
type FileProgressRepo struct {
	path string
}

// NewFileProgressRepo returns a repo backed by the file at path.
func NewFileProgressRepo(path string) *FileProgressRepo {
	return &FileProgressRepo{path: path}
}

// Path returns the backing file path.
func (r *FileProgressRepo) Path() string {
	return r.path
}

func (r *FileProgressRepo) Load(ctx context.Context) (*Progress, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read progress: %w", err)
	}

	if err := validateProgress(raw); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidProgress, r.path, err)
	}

	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidProgress, r.path, err)
	}

	// Older files may repeat an id; the set semantics are restored here.
	seen := make(map[string]bool, len(p.CompletedLessons))
	completed := make([]string, 0, len(p.CompletedLessons))
	for _, id := range p.CompletedLessons {
		if !seen[id] {
			seen[id] = true
			completed = append(completed, id)
		}
	}
	p.CompletedLessons = completed
	if p.HintCounts == nil {
		p.HintCounts = map[string]int{}
	}
	return &p, nil
}

// Save writes the whole record to a temporary file in the same directory
// and renames it over the previous one.
func (r *FileProgressRepo) Save(ctx context.Context, p *Progress) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp progress: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close progress: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace progress: %w", err)
	}
	return nil
}

// Delete removes the saved progress. A missing file is not an error.
func (r *FileProgressRepo) Delete(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

const progressSchemaURL = "mem://sqlcoach/progress.json"

var progressSchema = map[string]any{
	"type":     "object",
	"required": []any{"current_lesson", "completed_lessons", "started_at"},
	"properties": map[string]any{
		"current_lesson": map[string]any{"type": "string", "minLength": 1},
		"completed_lessons": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"hint_counts": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
		},
		"started_at": map[string]any{"type": "string", "minLength": 1},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledProgressSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip so the compiler sees plain decoded JSON values.
		defBytes, err := json.Marshal(progressSchema)
		if err != nil {
			compileErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(progressSchemaURL, def); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(progressSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateProgress checks raw JSON against the progress document schema.
func validateProgress(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := compiledProgressSchema()
	if err != nil {
		return fmt.Errorf("compile progress schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
