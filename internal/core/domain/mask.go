package domain

import "strings"

// MaskDigits keeps only the digits of v, stars all but the last four and groups
// the result in blocks of four. Values of four digits or fewer are returned bare.
func MaskDigits(v string) string {
	var digits strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) <= 4 {
		return d
	}

	masked := strings.Repeat("*", len(d)-4) + d[len(d)-4:]

	var out strings.Builder
	for i, r := range masked {
		if i > 0 && i%4 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Masked returns a copy of p with government id numbers masked.
func (p *Profile) Masked() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Aadhaar = MaskDigits(p.Aadhaar)
	c.PAN = MaskDigits(p.PAN)
	return &c
}

// Masked returns a copy of k with bank account and routing code masked.
func (k *KYC) Masked() *KYC {
	if k == nil {
		return nil
	}
	c := *k
	c.AccountNumber = MaskDigits(k.AccountNumber)
	c.IFSCCode = MaskDigits(k.IFSCCode)
	return &c
}
