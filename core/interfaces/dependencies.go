// ABOUTME: Dependencies bundles the adapters every core service is built from
// ABOUTME: Wired once in cmd/api and replaced with fakes in tests

package interfaces

// Dependencies is passed by value into service constructors.
// A nil Cache or HTTPClient makes the operations that need it fail with a typed error.
type Dependencies struct {
	// Cache backs the credential store and the theme color cache
	Cache Cache

	// HTTPClient reaches the feed API, the accounts API and the media API
	HTTPClient HTTPClient

	// Logger must not be nil
	Logger Logger
}
