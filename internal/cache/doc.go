// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, color.RGBA](256)
//	v, err := c.GetOrLoad("#ff8800", parse)
//
// Cache is safe for concurrent use and must not be copied after creation.
// A limit of 0 means unlimited.
package cache
