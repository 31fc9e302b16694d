package application

type CopyFieldKind string

const (
	CopyFieldPrimary    CopyFieldKind = "primary"
	CopyFieldEmail      CopyFieldKind = "email"
	CopyFieldPassword   CopyFieldKind = "password"
	CopyFieldLink       CopyFieldKind = "link"
	CopyFieldScreenName CopyFieldKind = "screen"
	CopyFieldPIN        CopyFieldKind = "pin"
)

func (k CopyFieldKind) Valid() bool {
	switch k {
	case CopyFieldPrimary, CopyFieldEmail, CopyFieldPassword, CopyFieldLink, CopyFieldScreenName, CopyFieldPIN:
		return true
	default:
		return false
	}
}
