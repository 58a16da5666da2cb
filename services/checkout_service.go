package services

import (
	"fmt"
	"net/url"
	"strings"
)

// CheckoutService turns a cart into the WhatsApp order handoff. There is no
// payment step: the formatted message is the whole checkout.
type CheckoutService struct {
	CafeName       string
	WhatsAppNumber string
}

func NewCheckoutService(cafeName, whatsappNumber string) *CheckoutService {
	return &CheckoutService{CafeName: cafeName, WhatsAppNumber: whatsappNumber}
}

// BuildMessage renders one line per cart line (name, optional size, quantity,
// subtotal), then the table line and the total, in the wording the café has
// always sent.
func (s *CheckoutService) BuildMessage(lines []CartLine, table string, total int64) string {
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		name := l.Name
		if l.Size != "" {
			name = fmt.Sprintf("%s (%s)", l.Name, l.Size)
		}
		rows = append(rows, fmt.Sprintf("%s x%d = %d ر.س", name, l.Quantity, l.Subtotal()))
	}

	tableInfo := "\nطلب تيك أواي"
	if table != "" {
		tableInfo = "\nرقم الطاولة: " + table
	}

	return fmt.Sprintf("طلب جديد من %s:%s\n\n%s\n\nالإجمالي: %d ر.س",
		s.CafeName, tableInfo, strings.Join(rows, "\n"), total)
}

// WhatsAppURL builds the wa.me deep link. QueryEscape uses '+' for spaces,
// which WhatsApp renders literally, so swap in %20.
func (s *CheckoutService) WhatsAppURL(message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.WhatsAppNumber, escaped)
}
