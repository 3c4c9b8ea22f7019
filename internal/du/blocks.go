package du

// clusterSize is the allocation granularity assumed when the platform does
// not report block usage.
const clusterSize = 4096

// estimateBlocks rounds size up to whole clusters, in 512-byte units.
func estimateBlocks(size int64) int64 {
	if size <= 0 {
		return 0
	}

	return (size + clusterSize - 1) / clusterSize * (clusterSize / 512)
}
