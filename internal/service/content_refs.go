package service

import (
	"regexp"
	"strconv"
)

// ScanAssetRefs returns the distinct asset ids embedded in content as
// canonical self-links of the form http://{siteBase}/image/{ownerID}/{id}.
// Repeated links to the same asset count once. The scan is pure: it reports
// what the content references at the moment it is read and touches nothing.
func ScanAssetRefs(content string, ownerID uint, siteBase string) []uint {
	if content == "" || siteBase == "" {
		return nil
	}

	pattern := regexp.MustCompile(
		`http://` + regexp.QuoteMeta(siteBase) + `/image/` +
			strconv.FormatUint(uint64(ownerID), 10) + `/(\d+)`,
	)

	matches := pattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(matches))
	ids := make([]uint, 0, len(matches))
	for _, match := range matches {
		parsed, err := strconv.ParseUint(match[1], 10, 32)
		if err != nil {
			// \d+ can overflow uint32; such a link cannot name a real asset.
			continue
		}
		id := uint(parsed)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
