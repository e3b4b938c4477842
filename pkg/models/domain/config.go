package domain

// Testbed describes the environment the benchmarks ran in.
type Testbed struct {
	Application       string
	BaselinePlatform  string
	CandidatePlatform string
	LoadTool          string
}
