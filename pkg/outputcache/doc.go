// Package outputcache stores rendered page output.
//
// A [Store] keeps byte slices under string keys with a TTL. [NewMemory] keeps
// entries in process and expires them with a background janitor; [NewRedis]
// shares them between instances through Redis. [Cache.Fetch] implements cache-aside
// rendering: on a miss the render function runs once per key even when many
// requests miss concurrently, and the output is stored best-effort.
//
//	cache := outputcache.New(store)
//	body, err := cache.Fetch(ctx, "Contact|page|/contact", 5*time.Minute,
//	    func(ctx context.Context) ([]byte, error) {
//	        var buf bytes.Buffer
//	        err := component.Render(ctx, &buf)
//	        return buf.Bytes(), err
//	    })
//
// TTL semantics for Set: positive expires after the duration, zero uses the
// store default, negative never expires.
package outputcache
