package domain

type CtxKey string

const (
	KeyUsername CtxKey = "Username"
	KeyUserCode CtxKey = "UserCode"
	KeyUserRole CtxKey = "Role"
)
