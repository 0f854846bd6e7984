package guide

import (
	"sort"
	"time"

	"github.com/sobadon/epgd/domain/model/program"
)

type indexEntry struct {
	start time.Time

	// 構築時に渡した programs の添字
	pos int
}

// 参照フィードの番組を開始時刻順・チャンネル別に引けるようにしたもの
// 一度構築したら読み取り専用
type Index struct {
	byChannel map[string][]indexEntry
}

func NewIndex(pgrams []program.Program) *Index {
	byChannel := map[string][]indexEntry{}
	for i, pgram := range pgrams {
		byChannel[pgram.Channel] = append(byChannel[pgram.Channel], indexEntry{start: pgram.Start, pos: i})
	}
	for ch := range byChannel {
		entries := byChannel[ch]
		sort.Slice(entries, func(i, j int) bool { return entries[i].start.Before(entries[j].start) })
	}
	return &Index{byChannel: byChannel}
}

func (idx *Index) HasChannel(channelID string) bool {
	return len(idx.byChannel[channelID]) != 0
}

// channelID のうち開始時刻が [from, to] に入る番組の添字を開始時刻順で返す
// 該当なしなら空
func (idx *Index) Window(channelID string, from, to time.Time) []int {
	entries := idx.byChannel[channelID]
	if len(entries) == 0 {
		return nil
	}

	lo := sort.Search(len(entries), func(i int) bool {
		return !entries[i].start.Before(from)
	})

	var poses []int
	for i := lo; i < len(entries); i++ {
		if entries[i].start.After(to) {
			break
		}
		poses = append(poses, entries[i].pos)
	}
	return poses
}
