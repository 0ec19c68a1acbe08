package constants

const (
	CookieKeyAuthToken = "pmajay_auth_token"

	CtxKeyUserID  = "user_id"
	CtxKeySession = "session"

	ViperSecretKey       = "auth.secret"
	ViperTokenTTL        = "auth.token_ttl"
	ViperListenAddr      = "server.addr"
	ViperCORSOrigin      = "server.cors_origin"
	ViperDatabaseDSN     = "database.dsn"
	ViperRemoteBaseURL   = "remote.base_url"
	ViperRemoteAPIKey    = "remote.api_key"
	ViperLGDDirectoryURL = "lgd.directory_url"
)
