package validation

// StubValidator is a Validator whose behavior is set per test.
// Without ValidateStructFunc every struct passes.
type StubValidator struct {
	ValidateStructFunc func(any) FieldErrors
}

var _ Validator = (*StubValidator)(nil)

func (s *StubValidator) ValidateStruct(st any) FieldErrors {
	if s.ValidateStructFunc == nil {
		return nil
	}
	return s.ValidateStructFunc(st)
}
