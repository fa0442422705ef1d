// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, image.Image](100)
//	img, err := c.GetOrLoad("logo.png", decode)
//
// Delete drops an entry. Entries past the limit are evicted least recently
// used first.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
