package catalog

import (
	"errors"

	"github.com/hupe1980/classmap/atom"
)

var (
	// ErrUnknownFormat is returned for a bundle name without a known codec
	// extension.
	ErrUnknownFormat = errors.New("unknown bundle format")
	// ErrChecksumMismatch is returned when a bundle does not match the
	// expected checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Catalog is a set of compiled classes loaded from one bundle.
type Catalog struct {
	// Name is the bundle name.
	Name string
	// Checksum is the CRC32C of the stored bundle bytes.
	Checksum uint32
	// Classes are in document order.
	Classes []*atom.Class
}

// Class returns the class with the given name.
func (c *Catalog) Class(name string) (*atom.Class, bool) {
	for _, cls := range c.Classes {
		if cls.Name() == name {
			return cls, true
		}
	}
	return nil, false
}

// Close closes every class. It is safe to call more than once.
func (c *Catalog) Close() error {
	var errs []error
	for _, cls := range c.Classes {
		errs = append(errs, cls.Close())
	}
	return errors.Join(errs...)
}
