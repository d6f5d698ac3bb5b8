//go:build !singlethread

package pool

const singleThreaded = false
