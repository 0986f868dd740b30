package domain

type CtxKey string

const (
	KeyUserName  CtxKey = "UserName"
	KeySessionID CtxKey = "SessionID"
	KeyRequestID CtxKey = "RequestID"
)

// GinKeyRequestID is where the request id lives in the gin context
const GinKeyRequestID = string(KeyRequestID)
