package user

// Principal identifies the authenticated manager behind a request.
type Principal struct {
	UserID string
	Email  string
}
