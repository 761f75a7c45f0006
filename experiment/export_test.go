package experiment

// Test-only bridges to private helpers, so the external experiment_test
// package can white-box the measurement plumbing without widening the
// production API.

var (
	// MeanStdev exposes meanStdev for white-box tests.
	MeanStdev = meanStdev

	// NewRNG exposes newRNG for white-box tests.
	NewRNG = newRNG

	// RandomInts exposes randomInts for white-box tests.
	RandomInts = randomInts

	// CheckSorted exposes checkSorted for white-box tests.
	CheckSorted = checkSorted

	// GridCells exposes gridCells for white-box tests.
	GridCells = gridCells

	// WriteCSV exposes writeCSV for white-box tests.
	WriteCSV = writeCSV

	// WriteJSON exposes writeJSON for white-box tests.
	WriteJSON = writeJSON

	// WritePlot exposes writePlot for white-box tests.
	WritePlot = writePlot
)

// MaxQuadraticN exposes the quadratic size cap for test assertions.
const MaxQuadraticN = maxQuadraticN

// CSVFileName, JSONFileName, and PlotFileName expose the artifact names
// so tests never hard-code them.
const (
	CSVFileName  = csvFileName
	JSONFileName = jsonFileName
	PlotFileName = plotFileName
)
