package phonenumber

import (
	"github.com/nyaruka/phonenumbers"
)

type PhoneNumber struct {
	internal *phonenumbers.PhoneNumber
}

// Should be +xxxxxxxxx (OR E164)
//
// +<CountryCode><NationalNumber>
//
// ex: +15551111111
func Parse(phoneNumberStr string) (*PhoneNumber, error) {
	num, err := phonenumbers.Parse(phoneNumberStr, phonenumbers.UNKNOWN_REGION)
	if err != nil {
		return nil, err
	}
	return &PhoneNumber{internal: num}, nil
}

// MayParse returns nil when phoneNumberStr can not be parsed.
// Used for log fields only, the provider is the one that decides if a number is acceptable.
func MayParse(phoneNumberStr string) *PhoneNumber {
	num, err := Parse(phoneNumberStr)
	if err != nil {
		return nil
	}
	return num
}

func (p *PhoneNumber) ToE164() string {
	return phonenumbers.Format(p.internal, phonenumbers.E164)
}

func (p *PhoneNumber) CountryCode() int {
	return int(p.internal.GetCountryCode())
}

// RegionCode is the ISO 3166-1 alpha-2 region, e.g. "US". "ZZ" when unknown.
func (p *PhoneNumber) RegionCode() string {
	return phonenumbers.GetRegionCodeForNumber(p.internal)
}

func (p *PhoneNumber) FormatToInternational() string {
	return phonenumbers.Format(p.internal, phonenumbers.INTERNATIONAL)
}
