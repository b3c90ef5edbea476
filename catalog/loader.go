package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/classmap"
	"github.com/hupe1980/classmap/blobstore"
	"github.com/hupe1980/classmap/internal/cache"
	"github.com/hupe1980/classmap/internal/hash"
	"github.com/hupe1980/classmap/resource"
	"github.com/hupe1980/classmap/schema"
)

// Loader reads and writes catalog bundles.
type Loader struct {
	store     blobstore.Store
	rc        *resource.Controller
	logger    *classmap.Logger
	mapOpts   []classmap.Option
	cacheSize int64
	cache     *cache.LRU
}

// Option configures a Loader.
type Option func(*Loader)

// WithResourceController limits IO, build concurrency and class map memory.
func WithResourceController(rc *resource.Controller) Option {
	return func(l *Loader) {
		l.rc = rc
	}
}

// WithLogger sets the logger for loads and saves. A nil logger disables
// logging.
func WithLogger(logger *classmap.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = classmap.NoopLogger()
		}
		l.logger = logger
	}
}

// WithMapOptions passes options to every class map built by Load.
func WithMapOptions(opts ...classmap.Option) Option {
	return func(l *Loader) {
		l.mapOpts = append(l.mapOpts, opts...)
	}
}

// WithCacheSize keeps up to size bytes of raw bundles in memory. Cached
// bytes are charged to the resource controller.
func WithCacheSize(size int64) Option {
	return func(l *Loader) {
		l.cacheSize = size
	}
}

// NewLoader creates a Loader reading from store.
func NewLoader(store blobstore.Store, opts ...Option) *Loader {
	l := &Loader{
		store:  store,
		logger: classmap.NoopLogger(),
	}
	for _, fn := range opts {
		fn(l)
	}
	if l.cacheSize > 0 {
		l.cache = cache.NewLRU(l.cacheSize, l.rc)
	}
	return l
}

// Close drops cached bundles.
func (l *Loader) Close() error {
	if l.cache == nil {
		return nil
	}
	return l.cache.Close()
}

// CacheStats returns bundle cache hits and misses.
func (l *Loader) CacheStats() (hits, misses int64) {
	if l.cache == nil {
		return 0, 0
	}
	return l.cache.Stats()
}

// Load reads the bundle name and compiles its classes.
func (l *Loader) Load(ctx context.Context, name string) (*Catalog, error) {
	start := time.Now()

	doc, sum, err := l.LoadDocument(ctx, name)
	if err != nil {
		return nil, err
	}

	classes, err := schema.Compile(ctx, doc,
		schema.WithResourceController(l.rc),
		schema.WithMapOptions(l.mapOpts...),
	)
	if err != nil {
		l.logger.Error("catalog compile failed", "name", name, "error", err)
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}

	l.logger.Info("catalog loaded",
		"name", name,
		"classes", len(classes),
		"checksum", sum,
		"duration", time.Since(start),
	)
	return &Catalog{Name: name, Checksum: sum, Classes: classes}, nil
}

// LoadDocument reads and decodes the bundle name without compiling it. It
// returns the document and the CRC32C of the stored bytes.
func (l *Loader) LoadDocument(ctx context.Context, name string) (*schema.Document, uint32, error) {
	format, err := ParseName(name)
	if err != nil {
		return nil, 0, err
	}

	raw, sum, err := l.read(ctx, name)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog %s: %w", name, err)
	}

	data, err := decompress(bytes.NewReader(raw), format.Compression)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog %s: %s: %w", name, format.Compression, err)
	}

	var doc schema.Document
	if err := format.Codec.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("catalog %s: decode %s: %w", name, format.Codec.Name(), err)
	}

	l.logger.Debug("catalog read",
		"name", name,
		"codec", format.Codec.Name(),
		"compression", format.Compression.String(),
		"bytes", len(data),
	)
	return &doc, sum, nil
}

// read returns the stored bytes of name and their CRC32C, from the cache
// when possible.
func (l *Loader) read(ctx context.Context, name string) ([]byte, uint32, error) {
	if l.cache != nil {
		if raw, ok := l.cache.Get(name); ok {
			return raw, hash.CRC32C(raw), nil
		}
	}

	r, err := l.store.Open(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = r.Close() }()

	h := hash.NewCRC32C()
	raw, err := io.ReadAll(io.TeeReader(resource.NewRateLimitedReader(ctx, r, l.rc), h))
	if err != nil {
		return nil, 0, err
	}
	if l.cache != nil {
		l.cache.Set(name, raw)
	}
	return raw, h.Sum32(), nil
}

// Verify loads the bundle and checks it against an expected checksum.
func (l *Loader) Verify(ctx context.Context, name string, checksum uint32) (*Catalog, error) {
	c, err := l.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if c.Checksum != checksum {
		_ = c.Close()
		return nil, fmt.Errorf("%w: %s: got %08x, want %08x", ErrChecksumMismatch, name, c.Checksum, checksum)
	}
	return c, nil
}

// Save encodes doc in the format implied by name and stores it. It returns
// the CRC32C of the stored bytes.
func (l *Loader) Save(ctx context.Context, name string, doc *schema.Document) (uint32, error) {
	format, err := ParseName(name)
	if err != nil {
		return 0, err
	}
	if err := doc.Validate(); err != nil {
		return 0, err
	}

	data, err := format.Codec.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("catalog %s: encode %s: %w", name, format.Codec.Name(), err)
	}
	data, err = compress(data, format.Compression)
	if err != nil {
		return 0, fmt.Errorf("catalog %s: %s: %w", name, format.Compression, err)
	}

	if err := l.rc.AcquireIO(ctx, len(data)); err != nil {
		return 0, err
	}
	if err := l.store.Put(ctx, name, data); err != nil {
		return 0, fmt.Errorf("catalog %s: %w", name, err)
	}
	if l.cache != nil {
		l.cache.Invalidate(func(key string) bool { return key == name })
	}

	sum := hash.CRC32C(data)
	l.logger.Info("catalog saved", "name", name, "bytes", len(data), "checksum", sum)
	return sum, nil
}

// List returns the names of all bundles with the given prefix.
func (l *Loader) List(ctx context.Context, prefix string) ([]string, error) {
	names, err := l.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := names[:0]
	for _, n := range names {
		if _, err := ParseName(n); err == nil {
			out = append(out, n)
		}
	}
	return out, nil
}
