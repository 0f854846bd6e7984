package errutil

var (
	ErrHTTPRequest         = NewInternalError("http request error")
	ErrJSONDecode          = NewInternalError("json decode error")
	ErrJSONEncode          = NewInternalError("json encode error")
	ErrXMLDecode           = NewInternalError("xml decode error")
	ErrTimeParse           = NewInternalError("time parse error")
	ErrGetGuideNotOK       = NewInternalError("http get guide status code not ok")
	ErrCatalogRequestNotOK = NewInternalError("catalog request status code not ok")
	// カタログ検索がヒットしないことは異常系ではない
	ErrCatalogNotFound          = NewInternalError("catalog not found")
	ErrCacheMiss                = NewInternalError("cache miss")
	ErrCacheWrite               = NewInternalError("cache write error")
	ErrDatabaseOpen             = NewInternalError("database open error")
	ErrDatabaseQuery            = NewInternalError("database query error")
	ErrDatabaseScan             = NewInternalError("database scan error")
	ErrDatabasePrepare          = NewInternalError("database prepare error")
	ErrDatabaseNotFoundIdentity = NewInternalError("database not found series identity")
	ErrScheduler                = NewInternalError("scheduler error")
	// 分類できない系
	ErrInternal = NewInternalError("internal something error")
)
