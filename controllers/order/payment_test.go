package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/models"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []string
	to       []string
}

func (s *recordingSender) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, subject)
	s.to = append(s.to, to)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func setupPaymentRouter(t *testing.T, db *gorm.DB, sender *recordingSender) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders/:orderID/confirm-payment", ConfirmPaymentHandler(db, sender))
	return r
}

func seedPaidableOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()
	user := models.User{Name: "Ivan", Email: "ivan@example.com"}
	require.NoError(t, db.Create(&user).Error)
	_, err := models.CreateDefaultShippingAddress(db, &user)
	require.NoError(t, err)

	order := models.Order{UserID: &user.ID, Amount: decimal.RequireFromString("10.00")}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func confirmPayment(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConfirmPaymentMarksOrderPaid(t *testing.T) {
	db := setupDB(t)
	sender := &recordingSender{}
	r := setupPaymentRouter(t, db, sender)
	order := seedPaidableOrder(t, db)

	w := confirmPayment(r, "/orders/1/confirm-payment")
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.True(t, updated.Paid)
}

func TestConfirmPaymentSendsConfirmationEmail(t *testing.T) {
	db := setupDB(t)
	sender := &recordingSender{}
	r := setupPaymentRouter(t, db, sender)
	seedPaidableOrder(t, db)

	w := confirmPayment(r, "/orders/1/confirm-payment")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool { return sender.count() == 1 },
		2*time.Second, 10*time.Millisecond, "confirmation email never dispatched")

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Equal(t, "Order 1 payment Confirmation", sender.messages[0])
	assert.Equal(t, "email@example.com", sender.to[0])
}

func TestConfirmPaymentAlreadyPaidIsNoOp(t *testing.T) {
	db := setupDB(t)
	sender := &recordingSender{}
	r := setupPaymentRouter(t, db, sender)

	order := seedPaidableOrder(t, db)
	require.NoError(t, db.Model(&order).Update("paid", true).Error)

	w := confirmPayment(r, "/orders/1/confirm-payment")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already paid")

	// No new dispatch for an already-paid order.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, sender.count())
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	db := setupDB(t)
	r := setupPaymentRouter(t, db, &recordingSender{})

	w := confirmPayment(r, "/orders/99/confirm-payment")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
