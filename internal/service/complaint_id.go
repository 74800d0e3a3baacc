package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	complaintIDPrefix   = "OE"
	complaintIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	complaintIDLength   = 6
)

// GenerateComplaintID returns a public complaint identifier: "OE" followed
// by 6 characters drawn uniformly from uppercase letters and digits, using
// a cryptographically secure source. There is no collision retry; a clash
// surfaces as a unique-constraint failure on insert.
func GenerateComplaintID() (string, error) {
	alphabetLen := big.NewInt(int64(len(complaintIDAlphabet)))
	buf := make([]byte, complaintIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("random complaint id: %w", err)
		}
		buf[i] = complaintIDAlphabet[n.Int64()]
	}
	return complaintIDPrefix + string(buf), nil
}
