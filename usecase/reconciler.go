package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/epgd/domain/model/guide"
	"github.com/sobadon/epgd/domain/model/program"
	"github.com/sobadon/epgd/internal/fuzzutil"
	"github.com/sobadon/epgd/internal/timeutil"
)

const (
	// スコアがこの値を超えたら（ちょうどは含まない）一致とみなす
	matchThreshold = 85

	// 1 パス目の候補ウィンドウ
	windowHorizon = 8 * time.Hour

	// 2 パス目（オフセット補正後）の候補ウィンドウ
	secondPassWindow = 10 * time.Minute
)

type searchMode int

const (
	modeTitle searchMode = iota
	modeDescription
)

type matchState int

const (
	matchNone matchState = iota
	matchFound

	// 同名番組の連続放送などで候補を 1 つに絞れなかった
	// 2 パス目でオフセット補正して引き直す
	matchAmbiguous
)

type matchResult struct {
	state matchState

	// 参照フィード programs の添字
	// state が matchFound のときだけ有効
	pos int
}

type ucReconciler struct{}

func NewReconciler() *ucReconciler {
	return &ucReconciler{}
}

// ローカルフィードの各番組に対して参照フィードから同じ放送を探し、
// 見つかったら記述系フィールドを写す
// offsets はチャンネルごとの既知の時刻ズレ（nil 可）で、1 パス目の実測中央値が優先される
func (r *ucReconciler) Reconcile(ctx context.Context, localPgrams []program.Program, ref *guide.ParsedGuide, offsets map[string]time.Duration) ([]program.Program, int) {
	matched := 0
	var ambiguousPoses []int
	timeDiffs := map[string][]time.Duration{}

	for i := range localPgrams {
		p := &localPgrams[i]

		// 参照フィードにないチャンネルはどうしようもない
		if !ref.Index.HasChannel(p.Channel) {
			continue
		}

		cands := ref.Index.Window(p.Channel, p.Start.Add(-windowHorizon), p.Start.Add(windowHorizon))
		if len(cands) == 0 {
			continue
		}

		res := r.match(*p, ref.Programs, cands)
		switch res.state {
		case matchFound:
			refPgram := ref.Programs[res.pos]
			timeDiffs[p.Channel] = append(timeDiffs[p.Channel], p.Start.Sub(refPgram.Start))
			p.CopyDescriptiveFields(refPgram)
			matched++
		case matchAmbiguous:
			ambiguousPoses = append(ambiguousPoses, i)
		}
	}

	// 一致した番組の時刻差の中央値を、そのチャンネルの系統的なズレとみなす
	channelOffsets := map[string]time.Duration{}
	for ch, offset := range offsets {
		channelOffsets[ch] = offset
	}
	for ch, diffs := range timeDiffs {
		channelOffsets[ch] = timeutil.MedianDuration(diffs)
	}

	// 2 パス目
	// 絞り切れなかったものをズレ補正した狭いウィンドウで引き直す
	for _, i := range ambiguousPoses {
		p := &localPgrams[i]

		corrected := p.Start.Add(-channelOffsets[p.Channel])
		cands := ref.Index.Window(p.Channel, corrected.Add(-secondPassWindow), corrected.Add(secondPassWindow))
		if len(cands) == 0 {
			continue
		}

		res := r.match(*p, ref.Programs, cands)
		if res.state == matchFound {
			p.CopyDescriptiveFields(ref.Programs[res.pos])
			matched++
		}
	}

	log.Ctx(ctx).Info().Msgf("successfully reconciled programs (matched = %d, total = %d)", matched, len(localPgrams))
	return localPgrams, matched
}

func (r *ucReconciler) match(p program.Program, refPgrams []program.Program, cands []int) matchResult {
	res := r.matchByMode(p, refPgrams, cands, modeTitle)
	if res.state == matchNone {
		res = r.matchByMode(p, refPgrams, cands, modeDescription)
	}
	return res
}

// 1 モードぶんの照合
// ルールは上から順に適用される:
//  1. クエリ文字列が作れなければ不一致
//  2. 最良スコアが閾値以下なら不一致
//  3. 最良と同一文字列の候補が 1 つだけならそれが一致
//  4. 複数でも title/subtitle/description がすべて同じなら同内容なので先頭でよい
//  5. タイトルモードで複数なら説明文モードに絞り込んで再照合
//     それでも決まらなければ ambiguous（2 パス目へ）
//  6. 説明文モードで複数かつタイトルが割れていればタイトルの最良で決める
//  7. 残りは開始時刻が最も近い候補で決める
func (r *ucReconciler) matchByMode(p program.Program, refPgrams []program.Program, cands []int, mode searchMode) matchResult {
	query := queryText(p, mode)
	if query == "" {
		return matchResult{state: matchNone}
	}

	choices := make([]string, len(cands))
	for i, pos := range cands {
		choices[i] = candidateText(refPgrams[pos], mode)
	}

	scorer := fuzzutil.TokenSetRatio
	if mode == modeTitle {
		scorer = fuzzutil.Ratio
	}

	bestIdx, bestScore := fuzzutil.BestMatch(query, choices, scorer)
	if bestIdx < 0 || bestScore <= matchThreshold {
		return matchResult{state: matchNone}
	}

	best := choices[bestIdx]
	var group []int
	for i, choice := range choices {
		if choice == best {
			group = append(group, cands[i])
		}
	}

	if len(group) == 1 {
		return matchResult{state: matchFound, pos: group[0]}
	}

	if semanticallyIdentical(refPgrams, group) {
		return matchResult{state: matchFound, pos: group[0]}
	}

	if mode == modeTitle {
		res := r.matchByMode(p, refPgrams, group, modeDescription)
		if res.state == matchFound {
			return res
		}
		return matchResult{state: matchAmbiguous}
	}

	if !sameTitles(refPgrams, group) {
		titles := make([]string, len(group))
		for i, pos := range group {
			titles[i] = refPgrams[pos].Title
		}
		idx, _ := fuzzutil.BestMatch(p.Title, titles, fuzzutil.Ratio)
		return matchResult{state: matchFound, pos: group[idx]}
	}

	return matchResult{state: matchFound, pos: nearestStart(p, refPgrams, group)}
}

func queryText(p program.Program, mode searchMode) string {
	if mode == modeTitle {
		return p.Title
	}
	// EIT 由来のデータは説明文がないことがあり、そのときはサブタイトルで代用する
	if p.Description != "" {
		return p.Description
	}
	return p.Subtitle
}

func candidateText(refPgram program.Program, mode searchMode) string {
	if mode == modeTitle {
		return refPgram.Title
	}
	return refPgram.Description
}

// title, subtitle, description がすべて一致していれば同じ内容の放送とみなす
func semanticallyIdentical(refPgrams []program.Program, group []int) bool {
	first := refPgrams[group[0]]
	for _, pos := range group[1:] {
		p := refPgrams[pos]
		if p.Title != first.Title || p.Subtitle != first.Subtitle || p.Description != first.Description {
			return false
		}
	}
	return true
}

func sameTitles(refPgrams []program.Program, group []int) bool {
	first := refPgrams[group[0]]
	for _, pos := range group[1:] {
		if refPgrams[pos].Title != first.Title {
			return false
		}
	}
	return true
}

func nearestStart(p program.Program, refPgrams []program.Program, group []int) int {
	bestPos := group[0]
	var bestDiff time.Duration
	for i, pos := range group {
		diff := p.Start.Sub(refPgrams[pos].Start)
		if diff < 0 {
			diff = -diff
		}
		if i == 0 || diff < bestDiff {
			bestPos = pos
			bestDiff = diff
		}
	}
	return bestPos
}
