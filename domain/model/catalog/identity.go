package catalog

// (シリーズ名, チャンネル) → カタログ ID の解決結果
// 一度解決したら positive cache として働き、同じシリーズの再検索を防ぐ
type SeriesIdentity struct {
	SeriesName string
	ChannelID  string

	// 不明なら空
	ExternalID string

	CatalogID int
}
