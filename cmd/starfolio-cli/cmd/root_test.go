package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runCLI executes the root command with args and returns stdout and the error.
// Flags are reset first since cobra keeps their values between runs.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STARFOLIO_DEFAULT_VIEW", "")

	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestCLI(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{
			name: "views marks the default view",
			args: []string{"views"},
			want: []string{"▸ 1 home", "2 projects", "4 writings"},
		},
		{
			name: "show raw projects",
			args: []string{"show", "projects", "--raw"},
			want: []string{"Autonomous Drone-Ground Swarm Coordination", "*Ongoing*"},
		},
		{
			name: "show games shelf",
			args: []string{"show", "writings", "--tab", "games", "--raw"},
			want: []string{"Historical narratives in Assassin's Creed"},
		},
		{
			name:    "show unknown tab",
			args:    []string{"show", "writings", "--tab", "films"},
			wantErr: "unknown tab",
		},
		{
			name:    "show unknown view",
			args:    []string{"show", "archive"},
			wantErr: "unknown view",
		},
		{
			name: "export svg to stdout",
			args: []string{"export", "--active", "projects"},
			want: []string{"<svg", "</svg>"},
		},
		{
			name:    "export unsupported format",
			args:    []string{"export", "--format", "gif"},
			wantErr: "gif",
		},
		{
			name: "links",
			args: []string{"links"},
			want: []string{"github", "linkedin", "email"},
		},
		{
			name:    "links open unknown kind",
			args:    []string{"links", "--open", "fax"},
			wantErr: "no fax link",
		},
		{
			name: "search",
			args: []string{"search", "koopman"},
			want: []string{"[technical] The Koopman Operator"},
		},
		{
			name: "search without results",
			args: []string{"search", "zzzz"},
			want: []string{"No results found"},
		},
		{
			name:    "search needs a query",
			args:    []string{"search"},
			wantErr: "accepts 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestCLI_ExportFormatFromOut(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		args   []string
		file   string
		prefix string
	}{
		{args: []string{"export", "--out"}, file: "nav.png", prefix: "\x89PNG"},
		{args: []string{"export", "--size", "120", "--out"}, file: "nav.svg", prefix: "<"},
		{args: []string{"export", "--format", "png", "--out"}, file: "nav.img", prefix: "\x89PNG"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			out, err := runCLI(t, append(tt.args, path)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != "" {
				t.Errorf("stdout should be empty when writing a file, got %q", out)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(string(data), tt.prefix) {
				t.Errorf("%s starts with %q, want %q", tt.file, data[:min(len(data), 8)], tt.prefix)
			}
			if tt.prefix == "<" && !strings.Contains(string(data), "<svg") {
				t.Errorf("%s is not an SVG", tt.file)
			}
		})
	}
}
