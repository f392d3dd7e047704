package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// TransactionHash fingerprints a reward credit so duplicate submissions of
// the same (user, amount, timestamp) triple collapse to a single transaction.
// The secret is process configuration, so clients cannot predict the hash
// space of another user.
func TransactionHash(userID string, amount float64, timestamp, secret string) string {
	payload := fmt.Sprintf("%s:%s:%s:%s",
		userID, strconv.FormatFloat(amount, 'f', -1, 64), timestamp, secret)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
