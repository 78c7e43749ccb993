package utils

import "crypto/rand"

// ticketAlphabet holds the characters a ticket code may contain.
const ticketAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TicketCodeLen is the fixed length of generated ticket codes.
const TicketCodeLen = 8

// NewTicketCode generates the short human-presentable booking
// reference: 8 uppercase alphanumeric characters.  Codes are not
// checked against existing bookings; collisions are possible and
// tolerated, the code is a display reference and not a credential.
func NewTicketCode() (string, error) {
	buf := make([]byte, TicketCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = ticketAlphabet[int(b)%len(ticketAlphabet)]
	}
	return string(buf), nil
}
