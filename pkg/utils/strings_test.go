package utils

import (
	"testing"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"id", "id"},
		{"ID", "id"},
		{"stdout", "stdout"},
		{"withExec", "with_exec"},
		{"exitCode", "exit_code"},
		{"withEnvVariable", "with_env_variable"},
		{"CacheVolumeID", "cache_volume_id"},
		{"URL", "url"},
		{"HTTPServer", "http_server"},
		{"UTF8Encode", "utf8_encode"},
		{"v1Beta", "v1_beta"},
		{"already_snake", "already_snake"},
		// Python keywords
		{"from", "from_"},
		{"import", "import_"},
		{"with", "with_"},
		{"async", "async_"},
	}

	for _, test := range tests {
		result := FormatName(test.input)
		if result != test.expected {
			t.Errorf("FormatName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestTitleAcronyms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"withExec", "withExec"},
		{"URL", "Url"},
		{"fileID", "fileId"},
		{"HTTPServer", "HttpServer"},
		{"CacheVolumeID", "CacheVolumeId"},
		{"ID2X", "Id2X"},
		{"aB_", "aB_"},
	}

	for _, test := range tests {
		result := TitleAcronyms(test.input)
		if result != test.expected {
			t.Errorf("TitleAcronyms(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"helloWorld", "hello_world"},
		{"HelloWorld", "hello_world"},
		{"getUserById", "get_user_by_id"},
		{"ABCd", "ab_cd"},
		{"v1Beta", "v1_beta"},
		{"hello_world", "hello_world"},
	}

	for _, test := range tests {
		result := CamelToSnake(test.input)
		if result != test.expected {
			t.Errorf("CamelToSnake(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestIsPythonKeyword(t *testing.T) {
	for _, kw := range []string{"from", "class", "lambda", "None", "await"} {
		if !IsPythonKeyword(kw) {
			t.Errorf("IsPythonKeyword(%q) = false, expected true", kw)
		}
	}
	for _, name := range []string{"from_", "id", "container", "none"} {
		if IsPythonKeyword(name) {
			t.Errorf("IsPythonKeyword(%q) = true, expected false", name)
		}
	}
}
