// Package resource governs the memory, build concurrency and IO spent on
// class maps and catalogs.
//
//   - Memory: every class map reserves its slot array before allocating it.
//     Reservations are fail-fast; a refusal surfaces as an out-of-memory error
//     from the builder.
//   - Builds: catalog compilation runs at most MaxBuilders class builds at once.
//   - IO: catalog bundle reads can be throttled with a token bucket.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	    MaxBuilders:      4,
//	})
//
//	if err := rc.AcquireMemory(size); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(size)
//
// All methods handle a nil *Controller as "no limits".
package resource
