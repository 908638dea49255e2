package pkg

// defaults of the reference network
const (
	DEFAULT_MAX_NODES        uint32 = 100
	DEFAULT_MAX_FUEL         uint64 = 50
	DEFAULT_MAX_HOP_DISTANCE uint64 = 5

	DEFAULT_RESULT_CACHE_SIZE = 4096
)

const (
	// strftime %FT%T%z
	TIMESTAMP_LAYOUT = "2006-01-02T15:04:05-0700"
)
