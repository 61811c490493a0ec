package usecase

// NoticeKind distinguishes success confirmations from failure reports.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeFailure NoticeKind = "failure"
)

// Notice is a transient user-facing message emitted after a mutation
// settles. The presentation layer decides how to display and expire it.
type Notice struct {
	Kind    NoticeKind
	Message string
}
