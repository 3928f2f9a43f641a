package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		flagUser string
		flagOut  string
		args     []string
		env      map[string]string
		expected Config
		wantErr  error
	}{
		{
			name:     "flags win over everything",
			flagUser: "flag-user",
			flagOut:  "flag.svg",
			args:     []string{"arg-user"},
			env: map[string]string{
				"GITHUB_USERNAME": "env-user",
				"OUTPUT_FILE":     "env.svg",
				"GITHUB_TOKEN":    "tok",
			},
			expected: Config{Username: "flag-user", Token: "tok", OutputPath: "flag.svg"},
		},
		{
			name: "positional argument beats the environment",
			args: []string{"arg-user"},
			env:  map[string]string{"GITHUB_USERNAME": "env-user"},
			expected: Config{
				Username:   "arg-user",
				OutputPath: DefaultOutputPath,
			},
		},
		{
			name: "environment fallback with default output",
			env:  map[string]string{"GITHUB_USERNAME": "env-user"},
			expected: Config{
				Username:   "env-user",
				OutputPath: DefaultOutputPath,
			},
		},
		{
			name: "output path from OUTPUT_FILE",
			args: []string{"octo"},
			env:  map[string]string{"OUTPUT_FILE": "cards/out.svg"},
			expected: Config{
				Username:   "octo",
				OutputPath: "cards/out.svg",
			},
		},
		{
			name:    "missing username is an error",
			wantErr: ErrMissingUsername,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clear the variables Resolve reads, then apply the case's env.
			for _, key := range []string{"GITHUB_USERNAME", "GITHUB_TOKEN", "OUTPUT_FILE"} {
				t.Setenv(key, "")
			}
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			cfg, err := Resolve(tc.flagUser, tc.flagOut, "", tc.args)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}
