package pipeline

import (
	"errors"
	"strings"
	"unicode"
)

// ValidateAddress performs the minimal address check: exactly one "@" with a non-empty
// local part and domain, and no whitespace.
func ValidateAddress(addr string) error {
	if strings.Count(addr, "@") != 1 {
		return invalidRecipientError(addr, errors.New("must contain exactly one @"))
	}

	local, domain, _ := strings.Cut(addr, "@")
	if local == "" {
		return invalidRecipientError(addr, errors.New("empty local part"))
	}

	if domain == "" {
		return invalidRecipientError(addr, errors.New("empty domain"))
	}

	if strings.IndexFunc(addr, unicode.IsSpace) >= 0 {
		return invalidRecipientError(addr, errors.New("contains whitespace"))
	}

	return nil
}

// validateAddresses checks every address of req, then lets the mail sink reject what it
// could not draft.
func (p *Pipeline) validateAddresses(req Request) error {
	addrs := append([]string{req.Recipient}, req.CC...)
	addrs = append(addrs, req.BCC...)

	for _, addr := range addrs {
		if err := ValidateAddress(addr); err != nil {
			return err
		}
	}

	checker, ok := p.mailSink.(AddressChecker)
	if !ok {
		return nil
	}

	for _, addr := range addrs {
		if err := checker.CheckAddress(addr); err != nil {
			return invalidRecipientError(addr, err)
		}
	}

	return nil
}
