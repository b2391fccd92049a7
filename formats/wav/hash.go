// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the uppercase hex SHA-256 of everything from d.DataOffset to
// the end of buf. Header fields do not take part in the digest, so two files
// carrying the same payload under different headers hash identically.
func Hash(buf []byte, d Descriptor) string {
	var payload []byte
	if d.DataOffset >= 0 && d.DataOffset <= len(buf) {
		payload = buf[d.DataOffset:]
	}

	sum := sha256.Sum256(payload)

	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
