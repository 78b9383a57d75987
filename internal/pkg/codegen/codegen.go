package codegen

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const suffixLen = 6

// ProductCode builds "{PREFIX}-{6 uppercase alphanumerics}" for a category
// prefix. Codes are random, not sequential; collisions are tolerated since
// items are addressed by id.
func ProductCode(prefix string) (string, error) {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(prefix))
	sb.WriteByte('-')

	for range suffixLen {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeChars))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeChars[num.Int64()])
	}

	return sb.String(), nil
}
