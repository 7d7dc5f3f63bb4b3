package auth

func (s *Service) DummyHash() string {
	return s.dummyHash
}
