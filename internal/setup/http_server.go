package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/intake/internal/config"
	"github.com/bornholm/intake/internal/http"
	"github.com/bornholm/intake/internal/http/handler/metrics"
	"github.com/bornholm/intake/internal/http/handler/webui"
	"github.com/bornholm/intake/internal/http/handler/webui/common"
	"github.com/bornholm/intake/internal/http/handler/webui/patient"
	"github.com/bornholm/intake/internal/http/i18n"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	i18nMiddleware := i18n.Middleware(conf.I18n.DefaultLanguage)

	assets := common.NewHandler()

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithMiddleware(i18nMiddleware),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithShutdownTimeout(conf.HTTP.ShutdownTimeout),
		http.WithMount("/assets/", assets),
		http.WithMount("/metrics/", metrics.NewHandler(prometheus.DefaultGatherer)),
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	fileStorage, err := getFileStorageFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure file storage from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	webui := webui.NewHandler(
		store, fileStorage, sessionStore, slog.Default(),
		webui.WithPatientOptions(
			patient.WithPhoneRegion(conf.Form.PhoneRegion),
			patient.WithMaxUploadSize(conf.Form.MaxUploadSize),
			patient.WithValidateOnBlur(conf.Form.ValidateOnBlur),
			patient.WithRegisterer(prometheus.DefaultRegisterer),
		),
	)
	options = append(options, http.WithMount("/", webui))

	server := http.NewServer(options...)

	return server, nil
}
