package form

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/pkg/errors"
)

const DefaultPhoneRegion = "TH"

// ParsePhoneNumber parses and validates raw, national numbers being
// resolved against region.
func ParsePhoneNumber(raw string, region string) (*phonenumbers.PhoneNumber, error) {
	region = regionOrDefault(region)

	number, err := phonenumbers.Parse(strings.TrimSpace(raw), region)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse phone number '%s'", raw)
	}

	if !phonenumbers.IsValidNumber(number) {
		return nil, errors.Errorf("invalid phone number '%s'", raw)
	}

	return number, nil
}

// NormalizePhoneNumber returns the E.164 form of raw
func NormalizePhoneNumber(raw string, region string) (string, error) {
	number, err := ParsePhoneNumber(raw, region)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}

func internationalPhoneNumber(raw string, region string) (display string, e164 string) {
	if strings.TrimSpace(raw) == "" {
		return "", ""
	}

	number, err := ParsePhoneNumber(raw, region)
	if err != nil {
		return raw, ""
	}

	return phonenumbers.Format(number, phonenumbers.INTERNATIONAL), phonenumbers.Format(number, phonenumbers.E164)
}

func countryCallingCode(region string) string {
	code := phonenumbers.GetCountryCodeForRegion(regionOrDefault(region))
	if code == 0 {
		return ""
	}

	return "+" + strconv.Itoa(code)
}

func regionOrDefault(region string) string {
	if region == "" {
		return DefaultPhoneRegion
	}
	return strings.ToUpper(region)
}
