package types

// Service is an action service the dispatcher calls into
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
