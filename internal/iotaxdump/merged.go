package iotaxdump

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// readMerged loads merged.dmp into a map from the old ID to the new one.
// Chains of merges are flattened to point to the final ID.
func (b *builder) readMerged(path string) (map[int64]int64, error) {
	res := make(map[int64]int64)
	err := b.readDump(path, "merged ", func(n int, fields []string) error {
		if len(fields) < 2 {
			return lineError(n, "expected 2 fields, got %d", len(fields))
		}
		old, err := parseID(fields[0])
		if err != nil {
			return lineError(n, "bad old ID %q", fields[0])
		}
		cur, err := parseID(fields[1])
		if err != nil {
			return lineError(n, "bad new ID %q", fields[1])
		}
		res[old] = cur
		return nil
	})
	if err != nil {
		return nil, MergedDumpError(path, err)
	}

	if err = flattenMerged(res); err != nil {
		return nil, MergedDumpError(path, err)
	}

	slog.Info("Merged IDs loaded",
		"path", path, "count", humanize.Comma(int64(len(res))))
	return res, nil
}

// flattenMerged makes every old ID point to an ID that is not merged
// itself.
func flattenMerged(merged map[int64]int64) error {
	for old := range merged {
		seen := map[int64]struct{}{old: {}}
		cur := merged[old]
		for {
			next, ok := merged[cur]
			if !ok {
				break
			}
			if _, loop := seen[cur]; loop {
				return fmt.Errorf("merged IDs form a cycle at %d", cur)
			}
			seen[cur] = struct{}{}
			cur = next
		}
		merged[old] = cur
	}
	return nil
}
