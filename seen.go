package margins

// SeenFilter is a probabilistic membership filter over export content
// hashes. A positive Test may be a false positive and must be confirmed
// against authoritative storage before a message is skipped.
type SeenFilter interface {
	// Add records a key.
	Add(key string)

	// Test returns true if the key might have been added.
	Test(key string) bool
}
