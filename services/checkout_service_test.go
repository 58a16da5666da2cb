package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutMessage(t *testing.T) {
	svc := NewCheckoutService("مقهى موال مراكش", "966567833138")
	lines := []CartLine{
		{ItemID: "item-10", Name: "لاتيه", UnitPrice: 16, Quantity: 2},
		{ItemID: "item-23", Name: "شاي أتاي", Size: "براد كبير", UnitPrice: 25, Quantity: 1},
	}

	msg := svc.BuildMessage(lines, "5", 57)
	assert.Contains(t, msg, "طلب جديد من مقهى موال مراكش:")
	assert.Contains(t, msg, "رقم الطاولة: 5")
	assert.Contains(t, msg, "لاتيه x2 = 32 ر.س")
	assert.Contains(t, msg, "شاي أتاي (براد كبير) x1 = 25 ر.س")
	assert.Contains(t, msg, "الإجمالي: 57 ر.س")
	assert.NotContains(t, msg, "تيك أواي")
}

func TestCheckoutMessageTakeaway(t *testing.T) {
	svc := NewCheckoutService("مقهى موال مراكش", "966567833138")
	lines := []CartLine{{ItemID: "item-10", Name: "لاتيه", UnitPrice: 16, Quantity: 1}}

	msg := svc.BuildMessage(lines, "", 16)
	assert.Contains(t, msg, "طلب تيك أواي")
	assert.NotContains(t, msg, "رقم الطاولة")
}

func TestCheckoutWhatsAppURL(t *testing.T) {
	svc := NewCheckoutService("Cafe", "966567833138")

	u := svc.WhatsAppURL("hello world & more")
	require.True(t, strings.HasPrefix(u, "https://wa.me/966567833138?text="))
	assert.NotContains(t, u, "+", "WhatsApp shows '+' literally, spaces must be percent-encoded")
	assert.Contains(t, u, "hello%20world%20%26%20more")
}
