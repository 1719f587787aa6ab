package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func writePipeline(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "pipeline.yml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write pipeline file: %v", err)
	}
	return path
}

func TestReadPipeline(t *testing.T) {
	path := writePipeline(t, `
name: nightly
steps:
  - name: build
    run: make build
    success: build passed
    error: build failed
  - run: make test
`)

	pipeline, err := readPipeline(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if pipeline.Name != "nightly" || len(pipeline.Steps) != 2 {
		t.Fatalf("unexpected pipeline %+v", pipeline)
	}
	if pipeline.Steps[0].successMessage() != "build passed" {
		t.Fatalf("unexpected success message %q", pipeline.Steps[0].successMessage())
	}
	if pipeline.Steps[0].errorMessage() != "build failed" {
		t.Fatalf("unexpected error message %q", pipeline.Steps[0].errorMessage())
	}

	// A step without a name takes its run command as display name, and the
	// transcript messages default from it.
	if pipeline.Steps[1].Name != "make test" {
		t.Fatalf("unexpected step name %q", pipeline.Steps[1].Name)
	}
	if pipeline.Steps[1].successMessage() != `step "make test" succeeded` {
		t.Fatalf("unexpected success message %q", pipeline.Steps[1].successMessage())
	}
}

func TestReadPipelineErrors(t *testing.T) {
	if _, err := readPipeline(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := writePipeline(t, "steps: [not a step]")
	if _, err := readPipeline(path); err == nil {
		t.Fatal("expected an error for a malformed file")
	}

	path = writePipeline(t, "steps:\n  - name: empty\n")
	if _, err := readPipeline(path); err == nil {
		t.Fatal("expected an error for a step without a run command")
	}
}
