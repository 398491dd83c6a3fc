package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier for listings, bids and notifications
func GenerateID() string {
	return uuid.New().String()
}

// IsID reports whether s was produced by GenerateID
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
