// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/sirseerhq/bitbucket-relay/internal/bitbucket"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		input         string
		wantWorkspace string
		wantRepo      string
		wantErr       bool
	}{
		{
			input:         "myteam/my-repo",
			wantWorkspace: "myteam",
			wantRepo:      "my-repo",
			wantErr:       false,
		},
		{
			input:         "atlassian/jira",
			wantWorkspace: "atlassian",
			wantRepo:      "jira",
			wantErr:       false,
		},
		{
			input:   "invalid",
			wantErr: true,
		},
		{
			input:   "too/many/slashes",
			wantErr: true,
		},
		{
			input:   "/repo",
			wantErr: true,
		},
		{
			input:   "workspace/",
			wantErr: true,
		},
		{
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		workspace, repoSlug, err := parseRepository(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRepository(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr {
			if workspace != tt.wantWorkspace {
				t.Errorf("parseRepository(%q) workspace = %q, want %q", tt.input, workspace, tt.wantWorkspace)
			}
			if repoSlug != tt.wantRepo {
				t.Errorf("parseRepository(%q) repo = %q, want %q", tt.input, repoSlug, tt.wantRepo)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		check   func(time.Time) bool
	}{
		{
			input:   "2023-01-15",
			wantErr: false,
			check: func(d time.Time) bool {
				return d.Year() == 2023 && d.Month() == 1 && d.Day() == 15
			},
		},
		{
			input:   "2023-02-29",
			wantErr: true,
		},
		{
			input:   "2023-1-5",
			wantErr: true,
		},
		{
			input:   "15/01/2023",
			wantErr: true,
		},
		{
			input:   "2023-01-15T10:30:00Z",
			wantErr: true,
		},
		{
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && tt.check != nil && !tt.check(got) {
			t.Errorf("parseDate(%q) = %v, failed check", tt.input, got)
		}
	}
}

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name    string
		flags   exportFlags
		want    bitbucket.Filter
		wantErr string
	}{
		{
			name:  "no flags",
			flags: exportFlags{},
			want:  bitbucket.Filter{},
		},
		{
			name:  "state flag",
			flags: exportFlags{state: "MERGED"},
			want:  bitbucket.Filter{State: bitbucket.StateMerged},
		},
		{
			name:    "invalid state",
			flags:   exportFlags{state: "closed"},
			wantErr: "invalid state",
		},
		{
			name:  "date range and branch",
			flags: exportFlags{createdAfter: "2023-01-01", createdBefore: "2023-01-31", destBranch: "main"},
			want: bitbucket.Filter{
				CreatedAfter:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				CreatedBefore:     time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
				DestinationBranch: "main",
			},
		},
		{
			name:    "invalid created-after",
			flags:   exportFlags{createdAfter: "01-01-2023"},
			wantErr: "--created-after",
		},
		{
			name:    "invalid created-before",
			flags:   exportFlags{createdBefore: "soon"},
			wantErr: "--created-before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildFilter(tt.flags)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("buildFilter() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("buildFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
