package session

import "context"

// Credentials adapts one session to the API client's Auth contract: it
// hands out the stored access token and tears the session down when the
// client reports the token dead.
type Credentials struct {
	ctx   context.Context
	store Store
	sess  *Session
}

func (s *Session) Credentials(ctx context.Context, store Store) Credentials {
	return Credentials{ctx: ctx, store: store, sess: s}
}

func (c Credentials) Token() string {
	if c.sess == nil {
		return ""
	}
	return c.sess.AccessToken
}

func (c Credentials) Clear() {
	if c.sess == nil || c.store == nil {
		return
	}
	_ = c.store.Delete(c.ctx, c.sess.ID)
}
