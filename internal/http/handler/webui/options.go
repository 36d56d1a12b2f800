package webui

import patientModule "github.com/bornholm/intake/internal/http/handler/webui/patient"

type Options struct {
	Patient []patientModule.OptionFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithPatientOptions(funcs ...patientModule.OptionFunc) OptionFunc {
	return func(opts *Options) {
		opts.Patient = append(opts.Patient, funcs...)
	}
}
