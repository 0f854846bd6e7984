package guide

import (
	"github.com/sobadon/epgd/domain/model/program"
)

// パース済みフィード一式
// Index は参照フィード側の検索にだけ使う
type ParsedGuide struct {
	Channels map[string]program.Channel
	Programs []program.Program
	Index    *Index
}

// LCN で突き合わせて g 側のチャンネル ID を ref 側の ID に揃える
// 番組の channel 参照も張り替える
// LCN が一致しなかったチャンネルは落とす
func (g *ParsedGuide) TransferChannelIDs(ref *ParsedGuide) {
	chMapping := map[string]string{}
	newChannels := map[string]program.Channel{}

	for _, ch := range g.Channels {
		for _, refCh := range ref.Channels {
			if ch.LCN != "" && ch.LCN == refCh.LCN {
				chMapping[ch.ID] = refCh.ID
				ch.ID = refCh.ID
				newChannels[ch.ID] = ch
				break
			}
		}
	}

	for i := range g.Programs {
		if newID, ok := chMapping[g.Programs[i].Channel]; ok {
			g.Programs[i].Channel = newID
		}
	}

	g.Channels = newChannels
}
