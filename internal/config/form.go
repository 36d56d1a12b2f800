package config

type Form struct {
	PhoneRegion   string `env:"PHONE_REGION,expand" envDefault:"TH"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE,expand" envDefault:"5242880"`
	// ValidateOnBlur also validates fields when they lose focus
	ValidateOnBlur bool `env:"VALIDATE_ON_BLUR,expand" envDefault:"false"`
}
