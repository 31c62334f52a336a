// Copyright 2025 walteh LLC
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

package filter

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestMatcher_Eligible(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(cfg *Config)
		want map[string]bool
	}{
		{
			name: "default_config",
			want: map[string]bool{
				"test.vue":                          true,
				"src/components/UserForm.vue":       true,
				"/home/dev/app/src/pages/Login.vue": true,
				`C:\app\src\Login.vue`:              true,
				"test.js":                           false,
				"src/main.ts":                       false,
				"src/App.vue.bak":                   false,
			},
		},
		{
			name: "include_restricts_directory",
			cfg: func(cfg *Config) {
				cfg.Include = []string{"src/**/*.vue"}
			},
			want: map[string]bool{
				"src/components/test.vue":  true,
				`src\components\test.vue`: true,
				"other/test.vue":           false,
			},
		},
		{
			name: "exclude_directory",
			cfg: func(cfg *Config) {
				cfg.Exclude = []string{"**/test/**/*.vue"}
			},
			want: map[string]bool{
				"src/components/form.vue": true,
				"src/test/form.vue":       false,
			},
		},
		{
			name: "exclude_by_basename",
			cfg: func(cfg *Config) {
				cfg.Exclude = []string{"*.spec.vue"}
			},
			want: map[string]bool{
				"src/components/UserForm.vue":      true,
				"src/components/UserForm.spec.vue": false,
				"deep/a/b/c/Thing.spec.vue":        false,
			},
		},
		{
			name: "complex_project_layout",
			cfg: func(cfg *Config) {
				cfg.Include = []string{"src/**/*.vue"}
				cfg.Exclude = []string{"src/test/**/*.vue", "**/*.spec.vue"}
			},
			want: map[string]bool{
				"src/components/UserForm.vue":      true,
				"src/pages/Login.vue":              true,
				"src/test/UserForm.vue":            false,
				"src/components/UserForm.spec.vue": false,
				"other/Form.vue":                   false,
			},
		},
		{
			name: "disabled",
			cfg: func(cfg *Config) {
				cfg.Enabled = false
			},
			want: map[string]bool{
				"test.vue":                false,
				"src/components/form.vue": false,
			},
		},
		{
			name: "empty_include_matches_nothing",
			cfg: func(cfg *Config) {
				cfg.Include = []string{}
			},
			want: map[string]bool{
				"test.vue": false,
			},
		},
		{
			name: "invalid_pattern_never_matches",
			cfg: func(cfg *Config) {
				cfg.Include = []string{"src/[.vue", "**/*.vue"}
				cfg.Exclude = []string{"{unclosed"}
			},
			want: map[string]bool{
				"src/[.vue": true,
				"test.vue":  true,
				"test.js":   false,
			},
		},
		{
			name: "only_invalid_include",
			cfg: func(cfg *Config) {
				cfg.Include = []string{"src/[.vue"}
			},
			want: map[string]bool{
				"src/[.vue": false,
				"test.vue":  false,
			},
		},
		{
			name: "custom_filter_takes_precedence",
			cfg: func(cfg *Config) {
				cfg.Exclude = []string{"**/*"}
				cfg.Filter = func(id string) (bool, error) {
					return strings.Contains(id, "components"), nil
				}
			},
			want: map[string]bool{
				"src/components/form.vue": true,
				"src/components/form.js":  true,
				"src/pages/form.vue":      false,
			},
		},
		{
			name: "custom_filter_sees_raw_identifier",
			cfg: func(cfg *Config) {
				cfg.Filter = func(id string) (bool, error) {
					return strings.Contains(id, `\`), nil
				}
			},
			want: map[string]bool{
				`src\components\form.vue`: true,
				"src/components/form.vue": false,
			},
		},
		{
			name: "disabled_beats_custom_filter",
			cfg: func(cfg *Config) {
				cfg.Enabled = false
				cfg.Filter = func(id string) (bool, error) {
					return true, nil
				}
			},
			want: map[string]bool{
				"test.vue": false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

			cfg := DefaultConfig()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			m := New(ctx, cfg)

			for id, want := range tt.want {
				got, err := m.Eligible(id)
				require.NoError(t, err, "eligible should not fail for %q", id)
				assert.Equal(t, want, got, "eligibility of %q", id)
			}
		})
	}
}

func TestMatcher_FilterErrorPropagates(t *testing.T) {
	sentinel := errors.New("filter exploded")

	cfg := DefaultConfig()
	cfg.Filter = func(id string) (bool, error) {
		return false, sentinel
	}
	m := New(context.Background(), cfg)

	got, err := m.Eligible("src/App.vue")
	require.Error(t, err)
	assert.Equal(t, sentinel, err, "filter error should be returned unwrapped")
	assert.False(t, got)
}

func TestDefaultConfig_IsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Include[0] = "changed"

	assert.Equal(t, []string{"**/*.vue"}, DefaultConfig().Include, "default include should not be shared")
	assert.Equal(t, []string{"**/*.vue"}, DefaultInclude)
}

func TestBase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "src/components/Form.vue", want: "Form.vue"},
		{in: "Form.vue", want: "Form.vue"},
		{in: Normalize(`C:\src\Form.vue`), want: "Form.vue"},
		{in: "src/", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Base(tt.in))
		})
	}
}
