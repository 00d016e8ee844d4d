package common

const (
	// seconds between two stat rotations
	StatRollFrequency = 1

	MaxRetryCount = 20

	// splits the node list of a multi-node source
	Splitter = ";"
	// splits the entries of a filter list
	FilterSplitter = "|"

	// rows per sqlite transaction
	CommitBatch = 1000
)
