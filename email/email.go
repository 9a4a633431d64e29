package email

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Sender delivers a single message. Real SMTP delivery is an external
// collaborator; LogSender stands in for it in dev and tests.
type Sender interface {
	Send(to, subject, body string) error
}

// LogSender writes outgoing mail to the log instead of sending it.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("outgoing email")
	return nil
}

// SendOrderConfirmation mails the shopper that their order is paid. It runs
// after payment confirmation as a fire-and-forget task: any failure is
// logged and swallowed, the order stays paid.
func SendOrderConfirmation(sender Sender, db *gorm.DB, orderID uint) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		logger.Error().Err(err).Uint("order_id", orderID).Msg("order confirmation: order lookup failed")
		return
	}
	if order.UserID == nil {
		logger.Warn().Uint("order_id", orderID).Msg("order confirmation: order has no user, skipping")
		return
	}

	var address models.ShippingAddress
	if err := db.Where("user_id = ?", *order.UserID).First(&address).Error; err != nil {
		logger.Error().Err(err).Uint("order_id", orderID).Msg("order confirmation: shipping address lookup failed")
		return
	}

	subject := fmt.Sprintf("Order %d payment Confirmation", order.ID)
	body := fmt.Sprintf("Your order and payment has been confirmed. Your order number is %d.", order.ID)

	if err := sender.Send(address.Email, subject, body); err != nil {
		logger.Error().Err(err).Uint("order_id", orderID).Msg("order confirmation: send failed")
	}
}
