package pages

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Datasource.Extension != "md" {
		t.Fatalf("default extension should be md, got %q", cfg.Datasource.Extension)
	}
	if cfg.Logging.Provider != "noop" {
		t.Fatalf("default logging provider should be noop, got %q", cfg.Logging.Provider)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Datasource.BasePath = "content"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestConfigValidateRejectsMissingBasePath(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing base path to fail validation")
	}
}

func TestConfigValidateRejectsBadExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Datasource.BasePath = "content"
	cfg.Datasource.Extension = "../md"

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected non-alphanumeric extension to fail validation")
	}
}

func TestConfigValidateRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Datasource.BasePath = "content"
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown logging provider to fail validation")
	}
}
