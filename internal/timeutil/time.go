package timeutil

import (
	"sort"
	"time"
)

// last_update ファイルの書式
// 秒未満は保持しない
const LastUpdateLayout = "2006-01-02 15:04:05"

func TruncateToSecond(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

// チャンネルごとの系統的な時刻ズレの推定に使う
// 空スライスなら 0
func MedianDuration(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(ds))
	copy(sorted, ds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
