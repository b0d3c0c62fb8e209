package collbench

// Config fixes the sizes and probes of one run. The binary always runs
// DefaultConfig; other values exist for tests.
type Config struct {
	Records   int // synthetic records generated and loaded
	BenchSize int // elements per benchmarked container

	SampleCity  string
	SampleLimit int

	PresentID int // id looked up for its age, -1 when absent
	MissingID int // id looked up for its name, "NOT FOUND" when absent
}

func DefaultConfig() Config {
	return Config{
		Records:     10_000,
		BenchSize:   100_000,
		SampleCity:  "Kyiv",
		SampleLimit: 5,
		PresentID:   500,
		MissingID:   50_000,
	}
}
