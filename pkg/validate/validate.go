package validate

import "regexp"

// Referral codes look like I2U-XXXXXXXX where the suffix is an uppercase
// hex fragment of a uuid.
var referralCodeRe = regexp.MustCompile(`^I2U-[0-9A-F]{8}$`)

func IsReferralCode(s string) bool {
	return referralCodeRe.MatchString(s)
}
