package consts

const (
	TrashCleanupRunKey   = "trash:cleanup:last_run"
	AdminTokenRevokedKey = "admin:token:revoked:"
)
