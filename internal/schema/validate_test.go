package schema

import "testing"

func TestValidateConfig_Valid(t *testing.T) {
	doc := map[string]interface{}{
		"output_dir": "out",
		"targets": []interface{}{
			map[string]interface{}{"arch": "x86_64", "env": "gnu"},
			map[string]interface{}{"arch": "aarch64", "env": "msvc", "version": "3.11"},
		},
	}

	if err := ValidateConfig(doc); err != nil {
		t.Errorf("ValidateConfig() error = %v", err)
	}
}

func TestValidateConfig_MissingRequired(t *testing.T) {
	doc := map[string]interface{}{
		"output_dir": "out",
	}

	if err := ValidateConfig(doc); err == nil {
		t.Error("ValidateConfig() expected error for missing targets")
	}
}

func TestValidateConfig_EmptyTargets(t *testing.T) {
	doc := map[string]interface{}{
		"targets": []interface{}{},
	}

	if err := ValidateConfig(doc); err == nil {
		t.Error("ValidateConfig() expected error for empty targets")
	}
}

func TestValidateConfig_BadVersion(t *testing.T) {
	doc := map[string]interface{}{
		"targets": []interface{}{
			map[string]interface{}{"arch": "x86_64", "env": "msvc", "version": "three.ten"},
		},
	}

	if err := ValidateConfig(doc); err == nil {
		t.Error("ValidateConfig() expected error for malformed version")
	}
}
