package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTransferID returns a transfer ID like "Jan-003b": the period name,
// the transaction's zero-based index within it, and the leg position as a
// letter (leg 0='a', 1='b', etc.). The tuple is unique across a run as long
// as period names and per-period transaction indexes are unique.
func FormatTransferID(period string, txn, leg int) string {
	return fmt.Sprintf("%s-%03d%c", period, txn, rune('a'+leg))
}

// ParseTransferID parses "Jan-003b" back into period name, transaction
// index, and leg position.
func ParseTransferID(id string) (period string, txn, leg int, err error) {
	sep := strings.LastIndex(id, "-")
	if sep < 0 {
		return "", 0, 0, fmt.Errorf("invalid transfer ID format: %q", id)
	}
	period = id[:sep]
	rest := id[sep+1:]

	// Split the numeric index from the trailing leg letter(s).
	i := len(rest)
	for i > 0 && rest[i-1] >= 'a' && rest[i-1] <= 'z' {
		i--
	}
	if i == len(rest) {
		return "", 0, 0, fmt.Errorf("missing leg suffix in transfer ID %q", id)
	}

	txn, err = strconv.Atoi(rest[:i])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid transaction index in transfer ID %q: %w", id, err)
	}

	leg = int(rest[i] - 'a')
	if len(rest[i:]) > 1 {
		return "", 0, 0, fmt.Errorf("invalid leg suffix in transfer ID %q", id)
	}
	return period, txn, leg, nil
}
