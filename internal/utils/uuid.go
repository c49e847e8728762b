package utils

import "github.com/google/uuid"

// UUIDGenerator produces transaction ids for scans whose caller did not
// supply one.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so that transaction ids sort by
// submission time in the remote service's reports. It falls back to a random
// UUIDv4 if the v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
