package patient

import "github.com/prometheus/client_golang/prometheus"

type Options struct {
	// PhoneRegion resolves phone numbers entered without international prefix
	PhoneRegion string
	// MaxUploadSize is the maximum size of the identification document
	MaxUploadSize int64
	// ValidateOnBlur also validates fields when they lose focus
	ValidateOnBlur bool
	// Registerer receives the handler metrics
	Registerer prometheus.Registerer
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		PhoneRegion:   "TH",
		MaxUploadSize: 5 << 20,
		Registerer:    prometheus.DefaultRegisterer,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithPhoneRegion(region string) OptionFunc {
	return func(opts *Options) {
		opts.PhoneRegion = region
	}
}

func WithMaxUploadSize(size int64) OptionFunc {
	return func(opts *Options) {
		opts.MaxUploadSize = size
	}
}

func WithValidateOnBlur(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.ValidateOnBlur = enabled
	}
}

func WithRegisterer(registerer prometheus.Registerer) OptionFunc {
	return func(opts *Options) {
		opts.Registerer = registerer
	}
}
