package program

type Channel struct {
	ID          string
	DisplayName string

	// 論理チャンネル番号
	// 2 つのフィードのチャンネルはこれで突き合わせる
	LCN string

	Icon string
}
