package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		yaml        string
		wantErr     string
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults without file or env",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes)
				assert.Equal(t, "uploads", cfg.Paths.UploadDir)
				assert.Equal(t, "output", cfg.Paths.OutputDir)
				assert.Equal(t, SummaryFormatDOCX, cfg.Report.SummaryFormat)
				assert.Equal(t, ExportFormatXLSX, cfg.Report.ExportFormat)
				assert.Equal(t, "Publication Summary Report", cfg.Report.Title)
			},
		},
		{
			name: "file overrides defaults",
			yaml: "server:\n  port: 9090\npaths:\n  output_dir: /srv/out\nreport:\n  summary_format: markdown\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "/srv/out", cfg.Paths.OutputDir)
				assert.Equal(t, "uploads", cfg.Paths.UploadDir)
				assert.Equal(t, SummaryFormatMarkdown, cfg.Report.SummaryFormat)
			},
		},
		{
			name: "env overrides file",
			yaml: "server:\n  port: 9090\n",
			env: map[string]string{
				"PUBSUM_SERVER_PORT":          "7070",
				"PUBSUM_REPORT_EXPORT_FORMAT": "csv",
				"PUBSUM_SERVER_READ_TIMEOUT":  "5s",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7070, cfg.Server.Port)
				assert.Equal(t, ExportFormatCSV, cfg.Report.ExportFormat)
				assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
			},
		},
		{
			name:    "invalid port",
			env:     map[string]string{"PUBSUM_SERVER_PORT": "70000"},
			wantErr: "invalid server port",
		},
		{
			name:    "unsupported summary format",
			yaml:    "report:\n  summary_format: pdf\n",
			wantErr: "unsupported summary format",
		},
		{
			name:    "unsupported export format",
			env:     map[string]string{"PUBSUM_REPORT_EXPORT_FORMAT": "ods"},
			wantErr: "unsupported export format",
		},
		{
			name:    "malformed yaml",
			yaml:    "server: [",
			wantErr: "failed to load config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			configFile := ""
			if tt.yaml != "" {
				configFile = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(configFile, []byte(tt.yaml), 0644))
			}

			cfg, err := LoadFile(configFile)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadFile_MissingFileIsIgnored(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Paths.OutputDir = " "
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logging.Output = "syslog"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.MaxUploadBytes = 0
	assert.Error(t, cfg.Validate())
}
