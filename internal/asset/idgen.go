package asset

import (
	"fmt"
	"strconv"
	"strings"

	errors "github.com/frahmantamala/asset-inventory/internal"
)

// PrefixForType derives the identifier prefix from an asset type: the first
// three characters upper-cased, or the whole string when shorter.
func PrefixForType(assetType string) string {
	t := strings.TrimSpace(assetType)
	if len(t) > 3 {
		t = t[:3]
	}
	return strings.ToUpper(t)
}

// NextAssetID computes the identifier that follows lastID for the given
// prefix. An empty lastID yields <PREFIX>001. The numeric field widens past
// 999 instead of truncating. A suffix that does not parse as a number fails
// closed: handing out a guessed identifier could duplicate an existing one.
func NextAssetID(prefix, lastID string) (string, *errors.AppError) {
	if lastID == "" {
		return fmt.Sprintf("%s001", prefix), nil
	}

	if !strings.HasPrefix(lastID, prefix) {
		return "", errors.NewCorruptAssetIDError(
			fmt.Errorf("identifier %q does not carry prefix %q", lastID, prefix))
	}

	suffix := lastID[len(prefix):]
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return "", errors.NewCorruptAssetIDError(
			fmt.Errorf("identifier %q has suffix %q", lastID, suffix))
	}

	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}
