// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	apperrors "github.com/NVIDIA/release-matrix/pkg/errors"
	"github.com/NVIDIA/release-matrix/pkg/version"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	return path
}

func TestGeneratePlainTextInput(t *testing.T) {
	input := writeInput(t, "versions.txt", `
# release candidates
4.7.5
4.7.6
5.1.2
5.2.1
5.3
`)
	outDir := t.TempDir()

	err := Generate(t.Context(), Options{
		InputPath: input,
		OutputDir: outDir,
		Version:   "test",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Every slice file should exist
	for _, name := range []string{"all", "all-4", "all-5", "tot", "tot-4", "tot-5"} {
		path := filepath.Join(outDir, name+".json")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected slice file %s: %v", path, err)
		}
	}

	// The all slice should be sorted ascending
	data, err := os.ReadFile(filepath.Join(outDir, "all.json"))
	if err != nil {
		t.Fatalf("failed to read all.json: %v", err)
	}
	var entries []sliceEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("failed to unmarshal all.json: %v", err)
	}
	want := []string{"4.7.5", "4.7.6", "5.1.2", "5.2.1", "5.3"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Version != w {
			t.Errorf("all[%d] = %s, want %s", i, entries[i].Version, w)
		}
	}
}

func TestGenerateUpgradeFiles(t *testing.T) {
	input := writeInput(t, "versions.txt", "4.7.5\n4.7.6\n5.1.2\n5.2.1\n5.3\n")
	outDir := t.TempDir()

	if err := Generate(t.Context(), Options{
		InputPath: input,
		OutputDir: outDir,
	}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "upgrades", "5.3.json"))
	if err != nil {
		t.Fatalf("failed to read upgrade file: %v", err)
	}

	var suite upgradeSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		t.Fatalf("failed to unmarshal upgrade file: %v", err)
	}
	if suite.Target != "5.3" {
		t.Errorf("expected target 5.3, got %s", suite.Target)
	}

	want := []string{"4.7.6", "5.1.2", "5.2.1"}
	if len(suite.From) != len(want) {
		t.Fatalf("expected %d sources, got %d: %v", len(want), len(suite.From), suite.From)
	}
	for i, w := range want {
		if suite.From[i].Version != w {
			t.Errorf("from[%d] = %s, want %s", i, suite.From[i].Version, w)
		}
	}
}

func TestReadVersionListRouting(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "txt is plain text",
			file:    "versions.txt",
			content: "# comment\n5.3\n\n5.4\n",
			want:    []string{"5.3", "5.4"},
		},
		{
			name:    "no extension is plain text",
			file:    "versions",
			content: "4.7.2\n5.3\n",
			want:    []string{"4.7.2", "5.3"},
		},
		{
			name:    "json is a string list",
			file:    "versions.json",
			content: `["5.3", "5.4"]`,
			want:    []string{"5.3", "5.4"},
		},
		{
			name:    "yaml is a string list",
			file:    "versions.yaml",
			content: "- \"5.3\"\n- \"5.4\"\n",
			want:    []string{"5.3", "5.4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadVersionList(writeInput(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("ReadVersionList failed: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReadVersionList = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateJSONInput(t *testing.T) {
	input := writeInput(t, "versions.json", `["5.3", "5.4", "4.7.2"]`)
	outDir := t.TempDir()

	if err := Generate(t.Context(), Options{
		InputPath: input,
		OutputDir: outDir,
	}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "all.json"))
	if err != nil {
		t.Fatalf("failed to read all.json: %v", err)
	}
	var entries []sliceEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("failed to unmarshal all.json: %v", err)
	}
	if len(entries) != 3 || entries[0].Version != "4.7.2" {
		t.Errorf("unexpected all slice: %v", entries)
	}
}

func TestGenerateMalformedVersionAborts(t *testing.T) {
	input := writeInput(t, "versions.txt", "5.3\nnot-a-version\n5.4\n")
	outDir := filepath.Join(t.TempDir(), "out")

	err := Generate(t.Context(), Options{
		InputPath: input,
		OutputDir: outDir,
	})
	if err == nil {
		t.Fatal("expected error for malformed version")
	}

	// Nothing should have been written
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Error("expected no output directory after failed run")
	}

	// The failure carries both the structured code and the parse sentinel
	var structured *apperrors.StructuredError
	if !errors.As(err, &structured) {
		t.Fatalf("expected StructuredError, got %T", err)
	}
	if structured.Code != apperrors.ErrCodeMalformedVersion {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeMalformedVersion, structured.Code)
	}
	if !errors.Is(err, version.ErrMalformedVersion) {
		t.Error("expected error chain to include ErrMalformedVersion")
	}
}

func TestGenerateEmptyInputFails(t *testing.T) {
	input := writeInput(t, "versions.txt", "# only comments\n\n")

	err := Generate(t.Context(), Options{
		InputPath: input,
		OutputDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for empty version list")
	}
}

func TestGenerateMissingOptions(t *testing.T) {
	if err := Generate(t.Context(), Options{OutputDir: "x"}); err == nil {
		t.Error("expected error when input path missing")
	}
	if err := Generate(t.Context(), Options{InputPath: "x"}); err == nil {
		t.Error("expected error when output dir missing")
	}
}

func TestGenerateTemplated(t *testing.T) {
	input := writeInput(t, "versions.txt", "5.3\n5.4\n")
	tmpl := writeInput(t, "suite.cfg.tmpl",
		"suite {{.Suite}} generated {{.Generated}}\nversions {{join .Versions \",\"}}\n")
	outDir := t.TempDir()

	if err := Generate(t.Context(), Options{
		InputPath:    input,
		OutputDir:    outDir,
		TemplatePath: tmpl,
	}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "tot-5.cfg"))
	if err != nil {
		t.Fatalf("failed to read rendered file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "suite Tot-5") {
		t.Errorf("expected titled suite name, got: %s", content)
	}
	if !strings.Contains(content, "versions 5.3,5.4") {
		t.Errorf("expected joined versions, got: %s", content)
	}

	// Upgrade files are still emitted alongside rendered slices
	if _, err := os.Stat(filepath.Join(outDir, "upgrades", "5.4.json")); err != nil {
		t.Errorf("expected upgrade file alongside rendered output: %v", err)
	}
}

func TestTemplateExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"suite.cfg.tmpl", ".cfg"},
		{"suite.tmpl", ""},
		{"dir/x.yaml.tmpl", ".yaml"},
	}
	for _, tt := range tests {
		if got := templateExt(tt.path); got != tt.want {
			t.Errorf("templateExt(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFileSafe(t *testing.T) {
	if got := fileSafe("5.3_special/build:1"); got != "5.3_special_build_1" {
		t.Errorf("fileSafe = %q", got)
	}
	if got := fileSafe("5.3.2_200407.32413.abc123def456"); got != "5.3.2_200407.32413.abc123def456" {
		t.Errorf("expected nightly raw unchanged, got %q", got)
	}
}
