package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/intake/internal/config"
	"github.com/bornholm/intake/internal/crypto"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs := make([][]byte, 0, len(conf.HTTP.Session.Keys))
	for _, k := range conf.HTTP.Session.Keys {
		keyPairs = append(keyPairs, []byte(k))
	}

	if len(keyPairs) == 0 {
		slog.WarnContext(ctx, "no session keys configured, using random keys: sessions will not survive restarts")

		key, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate session key")
		}

		keyPairs = append(keyPairs, key)
	}

	store := sessions.NewCookieStore(keyPairs...)

	store.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	store.Options.Path = conf.HTTP.Session.Cookie.Path
	store.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	store.Options.Secure = conf.HTTP.Session.Cookie.Secure
	store.Options.SameSite = http.SameSiteLaxMode

	return store, nil
})
