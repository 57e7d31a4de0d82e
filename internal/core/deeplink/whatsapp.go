package deeplink

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultCountryCode is the Moroccan dialing prefix.
const DefaultCountryCode = "212"

// NormalizePhone strips everything but digits from raw and replaces a leading
// "0" with the country code. Numbers already carrying the prefix pass through.
func NormalizePhone(raw, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	if phone == "" {
		return ""
	}
	if strings.HasPrefix(phone, countryCode) {
		return phone
	}
	if strings.HasPrefix(phone, "0") {
		return countryCode + phone[1:]
	}
	return phone
}

// BuildChatLink constructs a wa.me deep link that opens a chat with the given
// number prefilled with message. Nothing is ever read back from the link.
func BuildChatLink(phone, message, countryCode string) (string, error) {
	normalized := NormalizePhone(phone, countryCode)
	if normalized == "" {
		return "", fmt.Errorf("phone number is required")
	}

	link := "https://wa.me/" + normalized
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link, nil
}

// ChatLinkQR renders the deep link as a QR code PNG so merchants can print or
// embed it.
func ChatLinkQR(phone, message, countryCode string, size int) ([]byte, error) {
	link, err := BuildChatLink(phone, message, countryCode)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}

	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
