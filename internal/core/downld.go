package core

// Fetcher retrieves the resource at locator and persists it, normalized, to destination.
type Fetcher interface {
	Fetch(locator string, destination string) error
}
