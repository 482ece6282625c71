// Package jobfile validates and decodes translation job files: JSON
// documents that name a provider, a language pair and the texts or files to
// translate.
package jobfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed job.schema.json
var jobSchemaJSON string

// Job is a declarative batch translation request.
type Job struct {
	Version  string   `json:"version"`
	Provider string   `json:"provider"`
	Source   string   `json:"source,omitempty"`
	Target   string   `json:"target"`
	Texts    []string `json:"texts,omitempty"`
	Files    []string `json:"files,omitempty"`
	Output   *string  `json:"output,omitempty"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// Load reads and validates a job file from disk.
func Load(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	job, err := Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return job, nil
}

// Validate checks a raw job document against the schema and the semantic
// rules and decodes it.
func Validate(payload json.RawMessage) (*Job, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("decode job JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize job JSON: %w", err)
	}

	var job Job
	if err := json.Unmarshal(normalized, &job); err != nil {
		return nil, fmt.Errorf("unmarshal job: %w", err)
	}

	if err := validateSemantics(&job); err != nil {
		return nil, err
	}

	return &job, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("job.schema.json", strings.NewReader(jobSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("job.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("job file is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("job file contains trailing content")
	}

	return value, nil
}

func validateSemantics(job *Job) error {
	if job == nil {
		return fmt.Errorf("job is nil")
	}

	if strings.TrimSpace(job.Version) != "v1" {
		return fmt.Errorf("version must be v1")
	}
	if strings.TrimSpace(job.Provider) == "" {
		return fmt.Errorf("provider must not be empty")
	}
	if strings.TrimSpace(job.Target) == "" {
		return fmt.Errorf("target must not be empty")
	}
	if len(job.Texts) == 0 && len(job.Files) == 0 {
		return fmt.Errorf("job needs at least one text or file")
	}

	for i, text := range job.Texts {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("texts[%d] must not be empty", i)
		}
	}
	for i, file := range job.Files {
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("files[%d] must not be empty", i)
		}
	}
	if job.Output != nil && strings.TrimSpace(*job.Output) == "" {
		return fmt.Errorf("output must not be empty when set")
	}

	return nil
}
