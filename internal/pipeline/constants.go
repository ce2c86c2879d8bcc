package pipeline

// Defaults for one merge run. Input and output locations can be overridden
// via STIPEND_INPUT_DIR and STIPEND_OUTPUT_DIR in cmd/merge-stipends.
const (
	// DefaultInputDir is where the stipend exports are dropped.
	DefaultInputDir = "Data"

	// DefaultOutputDir receives the consolidated artifact.
	DefaultOutputDir = "Data/processed"

	// OutputFilename is the fixed name of the consolidated artifact.
	OutputFilename = "merged_stipends.csv"

	// PreviewRows is how many sorted rows the console preview shows.
	PreviewRows = 10
)
