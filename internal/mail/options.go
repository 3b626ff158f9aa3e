package mail

import "errors"

type Option func(*Mailer) error

// WithSender sets the From address.
func WithSender(addr string) Option {
	return func(m *Mailer) error {
		if addr == "" {
			return errors.New("empty sender address")
		}
		m.sender = addr
		return nil
	}
}

// WithSecrets supplies the Mailjet API key pair. Omitting it leaves the
// mailer in log-only mode, which tests rely on.
func WithSecrets(publicKey, privateKey string) Option {
	return func(m *Mailer) error {
		m.publicKey = publicKey
		m.privateKey = privateKey
		return nil
	}
}

// WithStore attaches a throttle store.
func WithStore(store TimeStore) Option {
	return func(m *Mailer) error {
		if store == nil {
			return errors.New("nil time store")
		}
		m.store = store
		return nil
	}
}
