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

package matrix

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/release-matrix/pkg/defaults"
	"github.com/NVIDIA/release-matrix/pkg/serializer"
	"github.com/NVIDIA/release-matrix/pkg/server"
	"github.com/NVIDIA/release-matrix/pkg/version"
)

// versionsRequest is the POST body form of a matrix request.
type versionsRequest struct {
	Versions []string `json:"versions"`
}

// HandleSlices serves slice sets over HTTP. Versions are supplied either as
// a repeatable/comma-separated "versions" query parameter on GET, or as a
// JSON body on POST.
func (b *Builder) HandleSlices(w http.ResponseWriter, r *http.Request) {
	vs, ok := b.requestVersions(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, b.BuildSlices(vs))
}

// HandlePairs serves upgrade pairings over HTTP, with the same request
// shapes as HandleSlices.
func (b *Builder) HandlePairs(w http.ResponseWriter, r *http.Request) {
	vs, ok := b.requestVersions(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, b.BuildUpgradePairs(vs))
}

// requestVersions extracts and parses the version list from a request. On
// failure it writes the error response and returns ok=false.
func (b *Builder) requestVersions(w http.ResponseWriter, r *http.Request) ([]version.Version, bool) {
	var raws []string

	switch r.Method {
	case http.MethodGet:
		for _, param := range r.URL.Query()["versions"] {
			for _, raw := range strings.Split(param, ",") {
				if raw = strings.TrimSpace(raw); raw != "" {
					raws = append(raws, raw)
				}
			}
		}
	case http.MethodPost:
		var req versionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("failed to decode request body", "error", err)
			server.WriteError(w, r, http.StatusBadRequest,
				server.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to decode request body: %v", err),
				false, nil)
			return nil, false
		}
		raws = req.Versions
	default:
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed,
			server.ErrCodeMethodNotAllowed,
			fmt.Sprintf("method %s not allowed", r.Method),
			false, nil)
		return nil, false
	}

	if len(raws) == 0 {
		server.WriteError(w, r, http.StatusBadRequest,
			server.ErrCodeInvalidRequest, "no versions provided", false, nil)
		return nil, false
	}
	if len(raws) > defaults.MaxRequestVersions {
		server.WriteError(w, r, http.StatusBadRequest,
			server.ErrCodeInvalidRequest,
			fmt.Sprintf("too many versions: %d", len(raws)),
			false, map[string]any{"max": defaults.MaxRequestVersions})
		return nil, false
	}

	vs, err := version.ParseAll(raws)
	if err != nil {
		code := server.ErrCodeInvalidRequest
		if errors.Is(err, version.ErrMalformedVersion) {
			requestVersionsRejected.Inc()
			code = server.ErrCodeMalformedVersion
		}
		slog.Error("failed to parse versions", "error", err)
		server.WriteError(w, r, http.StatusBadRequest, code, err.Error(), false, nil)
		return nil, false
	}

	return vs, true
}
