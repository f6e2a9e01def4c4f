// Package mock holds gomock doubles of the store, sequencer and service
// interfaces. Regenerate with `go generate ./...`.
package mock
