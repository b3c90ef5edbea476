// Package cache provides an LRU cache for raw catalog bundles.
//
// Entries are charged to a resource.Controller when one is configured, so
// cached bytes count against the same memory limit as class maps.
package cache
