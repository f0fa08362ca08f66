package accounts

type StoreOpt func(*Store)

// WithBcryptCost sets the bcrypt work factor for new passwords.
func WithBcryptCost(cost int) StoreOpt {
	return func(s *Store) {
		s.cost = cost
	}
}
