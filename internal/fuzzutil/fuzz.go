package fuzzutil

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// あいまい一致スコアのラッパ
// スコアは 0-100
// 比較に失敗することはなく、空文字などの degenerate な入力は 0 になる

type Scorer func(a, b string) int

// 語順に敏感な比較
// タイトルのような短いフィールド向け
func Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return fuzzy.Ratio(strings.ToLower(a), strings.ToLower(b))
}

// 語順の入れ替え・部分集合に頑健な比較
// 説明文のような長い自由文向け
func TokenSetRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return fuzzy.TokenSetRatio(strings.ToLower(a), strings.ToLower(b))
}

func TokenSortRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return fuzzy.TokenSortRatio(strings.ToLower(a), strings.ToLower(b))
}

// choices のうち query に最もスコアが高いものを返す
// 返り値は (choices の添字, スコア)
// choices が空なら (-1, 0)
func BestMatch(query string, choices []string, score Scorer) (int, int) {
	bestIdx := -1
	bestScore := 0
	for i, choice := range choices {
		s := score(query, choice)
		if bestIdx == -1 || s > bestScore {
			bestIdx = i
			bestScore = s
		}
	}
	return bestIdx, bestScore
}
