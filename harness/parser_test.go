package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSuiteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func Test_Parser_Reads_A_Suite(t *testing.T) {
	path := writeSuiteFile(t, t.TempDir(), "basic.yaml", `
suite: basics
tests:
  - name: addition
    program: "+ 1 2"
    result: "3"
  - name: quits
    program: "Q 3"
    stdout: ""
    exit: 3
`)
	suite, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if suite.Name != "basics" || suite.Path != path {
		t.Fatalf("suite header wrong: %+v", suite)
	}
	if len(suite.Cases) != 2 {
		t.Fatalf("want 2 cases, got %d", len(suite.Cases))
	}
	first := suite.Cases[0]
	if first.Name != "addition" || first.Program != "+ 1 2" || first.Result != "3" {
		t.Fatalf("first case wrong: %+v", first)
	}
	if first.Stdout != nil || first.Exit != nil || first.Seed != nil {
		t.Fatalf("absent fields should stay nil: %+v", first)
	}
	second := suite.Cases[1]
	if second.Stdout == nil || *second.Stdout != "" {
		t.Fatalf("explicit empty stdout should be checked: %+v", second)
	}
	if second.Exit == nil || *second.Exit != 3 {
		t.Fatalf("exit expectation lost: %+v", second)
	}
}

func Test_Parser_Defaults_Suite_Name_To_File_Base(t *testing.T) {
	path := writeSuiteFile(t, t.TempDir(), "strings.yaml", `
tests:
  - name: one
    program: "1"
`)
	suite, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if suite.Name != "strings" {
		t.Fatalf("want default name %q, got %q", "strings", suite.Name)
	}
}

func Test_Parser_Rejects_Malformed_Suites(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want string
	}{
		"unnamed test": {
			yaml: "tests:\n  - program: \"1\"\n",
			want: "has no name",
		},
		"missing program": {
			yaml: "tests:\n  - name: empty\n",
			want: "has no program",
		},
		"unknown error class": {
			yaml: "tests:\n  - name: x\n    program: \"1\"\n    error: lexical\n",
			want: "unknown error class",
		},
		"not yaml": {
			yaml: ":\t:::",
			want: "parsing",
		},
	}
	dir := t.TempDir()
	for label, c := range cases {
		path := writeSuiteFile(t, dir, strings.ReplaceAll(label, " ", "_")+".yaml", c.yaml)
		_, err := ParseFile(path)
		if err == nil {
			t.Fatalf("%s: want error, got none", label)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: error %q missing %q", label, err, c.want)
		}
	}
}

func Test_Collector_Finds_Suite_Files_Recursively(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeSuiteFile(t, dir, "a.yaml", "tests: []\n")
	writeSuiteFile(t, filepath.Join(dir, "nested"), "b.yml", "tests: []\n")
	writeSuiteFile(t, dir, "notes.txt", "not a suite\n")

	files, err := CollectTestFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectTestFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("want 2 suite files, got %v", files)
	}
	for _, f := range files {
		if ext := filepath.Ext(f); ext != ".yaml" && ext != ".yml" {
			t.Fatalf("collected non-suite file %s", f)
		}
	}
}

func Test_Collector_Takes_Explicit_Files_As_Is(t *testing.T) {
	dir := t.TempDir()
	path := writeSuiteFile(t, dir, "direct.yaml", "tests: []\n")
	files, err := CollectTestFiles([]string{path})
	if err != nil {
		t.Fatalf("CollectTestFiles: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("want [%s], got %v", path, files)
	}
}

func Test_Collector_Missing_Path_Is_An_Error(t *testing.T) {
	if _, err := CollectTestFiles([]string{"/no/such/path"}); err == nil {
		t.Fatalf("want error for missing path")
	}
}
