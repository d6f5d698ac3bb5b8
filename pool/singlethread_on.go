//go:build singlethread

package pool

// Forces ThreadCount resolution to zero so every pool runs synchronously.
const singleThreaded = true
