package listener

type WebListenerOpt func(*WebListener)

// WithAccounts enables the /login and /register endpoints.
func WithAccounts(a Accounts) WebListenerOpt {
	return func(l *WebListener) {
		l.accounts = a
	}
}

// WithStaticDir serves the browser client from dir.
func WithStaticDir(dir string) WebListenerOpt {
	return func(l *WebListener) {
		l.staticDir = dir
	}
}

// WithReady holds off accepting connections until ready is closed.
func WithReady(ready <-chan struct{}) WebListenerOpt {
	return func(l *WebListener) {
		l.ready = ready
	}
}

// WithReadLimit caps the size of one client frame in bytes.
func WithReadLimit(bytes int64) WebListenerOpt {
	return func(l *WebListener) {
		l.readLimit = bytes
	}
}
