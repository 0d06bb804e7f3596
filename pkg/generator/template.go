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
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/NVIDIA/release-matrix/pkg/matrix"
	"github.com/NVIDIA/release-matrix/pkg/serializer"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateData is the data passed to a slice template on each expansion.
type templateData struct {
	// Name is the slice name (e.g. "tot-5").
	Name string
	// Suite is the titled display form of the slice name (e.g. "Tot-5").
	Suite string
	// Versions are the raw version strings of the slice, ascending.
	Versions []string
	// Generated is the UTC render timestamp in RFC3339 form.
	Generated string
}

// renderTemplated expands the configured template once per slice. Output
// files reuse the template's inner extension: suite.cfg.tmpl produces
// <slice>.cfg.
func renderTemplated(opts Options, s *matrix.SliceSet) error {
	titler := cases.Title(language.English)

	tmpl, err := template.New(filepath.Base(opts.TemplatePath)).Funcs(template.FuncMap{
		"title": titler.String,
		"join":  strings.Join,
	}).ParseFiles(opts.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", opts.TemplatePath, err)
	}

	ext := templateExt(opts.TemplatePath)
	generated := time.Now().UTC().Format(time.RFC3339)

	for _, ns := range s.Named() {
		data := templateData{
			Name:      ns.Name,
			Suite:     titler.String(ns.Name),
			Versions:  matrix.RawStrings(ns.Versions),
			Generated: generated,
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to render slice %s: %w", ns.Name, err)
		}

		path := filepath.Join(opts.OutputDir, ns.Name+ext)
		if err := serializer.WriteToFile(path, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write rendered file %s: %w", path, err)
		}
		generatedFiles.Inc()

		slog.Debug("rendered slice template", "path", path, "versions", len(data.Versions))
	}

	return nil
}

// templateExt derives the output extension from the template file name:
// "suite.cfg.tmpl" yields ".cfg", "suite.tmpl" yields no extension.
func templateExt(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".tmpl")
	return filepath.Ext(base)
}
