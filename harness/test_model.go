package harness

// TestCase captures one program and what running it must produce. Name and
// Program are required; every other expectation is optional and unchecked
// when absent.
type TestCase struct {
	Name    string  `yaml:"name"`
	Program string  `yaml:"program"`
	Stdin   string  `yaml:"stdin"`
	Stdout  *string `yaml:"stdout"` // exact stdout, when present
	Result  string  `yaml:"result"` // dump form of the final value, when non-empty
	Error   string  `yaml:"error"`  // "parse" or "runtime", when non-empty
	Exit    *int    `yaml:"exit"`   // QUIT status, when present (default 0)
	Seed    *int64  `yaml:"seed"`   // RANDOM seed (default 0)
}

// TestSuite represents one YAML file of test cases.
type TestSuite struct {
	Name  string     `yaml:"suite"`
	Cases []TestCase `yaml:"tests"`
	Path  string     `yaml:"-"`
}
