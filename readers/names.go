package readers

const (
	// Identifier of the reader which loads a whole database into
	// memory. Good for many lookups against a file which fits into
	// memory comfortably.
	ModeMemory = "memory"

	// Identifier of the reader which memory-maps a database. Good for
	// huge files and few lookups: resident memory is lower but each
	// access can page fault.
	ModeMmap = "mmap"
)

// Modes lists all known mode identifiers.
var Modes = []string{ModeMemory, ModeMmap}
