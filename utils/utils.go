package utils

import (
	"regexp"
	"strconv"
	"strings"

	"logistics-requests/errs"
)

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	kzPhonePattern  = regexp.MustCompile(`^\+7[0-9]{10}$`)
)

// NormalizePhone converts the usual Kazakhstan spellings (+7, 8 or bare
// ten-digit numbers, with any separators) to +7XXXXXXXXXX.
func NormalizePhone(phone string) (string, bool) {
	p := phoneSeparators.Replace(strings.TrimSpace(phone))
	switch {
	case strings.HasPrefix(p, "+7"):
	case len(p) == 11 && (p[0] == '8' || p[0] == '7'):
		p = "+7" + p[1:]
	case len(p) == 10:
		p = "+7" + p
	}
	if !kzPhonePattern.MatchString(p) {
		return "", false
	}
	return p, true
}

// ValidatePhoneNumber reports whether phone can be normalized.
func ValidatePhoneNumber(phone string) bool {
	_, ok := NormalizePhone(phone)
	return ok
}

// ParseID reads a positive numeric path parameter.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Validation("invalid id %q", raw)
	}
	return uint(id), nil
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
