package orderControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/molokoedovmp/Online-shop/cart"
	"github.com/molokoedovmp/Online-shop/middleware"
	"github.com/molokoedovmp/Online-shop/models"
)

const testSession = "test-session"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ShippingAddress{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func setupCheckoutRouter(t *testing.T) (*gin.Engine, *gorm.DB, cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	store := cart.NewMemoryStore()

	r := gin.New()
	r.POST("/orders/checkout", middleware.CartSession(), Checkout(db, store))
	return r, db, store
}

type cartLine struct {
	product models.Product
	qty     int
}

func fillCart(t *testing.T, store cart.Store, lines ...cartLine) {
	t.Helper()
	c, err := cart.Load(context.Background(), store, testSession)
	require.NoError(t, err)
	for _, line := range lines {
		c.Add(line.product, line.qty)
	}
	require.NoError(t, c.Save(context.Background()))
}

func postCheckout(r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/orders/checkout", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: testSession})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutCreatesOrderFromCart(t *testing.T) {
	r, db, store := setupCheckoutRouter(t)

	product := models.Product{ID: 1, Title: "Mug", Slug: "mug", Price: decimal.RequireFromString("50.00"), Available: true}
	require.NoError(t, db.Create(&product).Error)
	fillCart(t, store, cartLine{product, 2})

	w := postCheckout(r, gin.H{"discount": 0})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("100.00")))
	require.Len(t, order.Items, 1)
	assert.Equal(t, uint(1), order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("50.00")))
	assert.False(t, order.Paid)
}

func TestCheckoutAppliesDiscount(t *testing.T) {
	r, db, store := setupCheckoutRouter(t)

	product := models.Product{ID: 1, Title: "Mug", Slug: "mug", Price: decimal.RequireFromString("50.00"), Available: true}
	require.NoError(t, db.Create(&product).Error)
	fillCart(t, store, cartLine{product, 2})

	w := postCheckout(r, gin.H{"discount": 20})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, 20, order.Discount)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("80.00")))
	assert.True(t, order.TotalCostBeforeDiscount().Equal(decimal.RequireFromString("100.00")))
	assert.True(t, order.DiscountAmount().Equal(decimal.RequireFromString("20.00")))
}

func TestCheckoutUsesCartPriceSnapshot(t *testing.T) {
	r, db, store := setupCheckoutRouter(t)

	product := models.Product{ID: 1, Title: "Mug", Slug: "mug", Price: decimal.RequireFromString("10.00"), Available: true}
	require.NoError(t, db.Create(&product).Error)
	fillCart(t, store, cartLine{product, 3})

	// Catalog reprice between add and checkout must not change the order.
	require.NoError(t, db.Model(&product).Update("price", decimal.RequireFromString("99.00")).Error)

	w := postCheckout(r, gin.H{"discount": 0})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("30.00")))
}

func TestCheckoutClearsCart(t *testing.T) {
	r, db, store := setupCheckoutRouter(t)

	product := models.Product{ID: 1, Title: "Mug", Slug: "mug", Price: decimal.RequireFromString("10.00"), Available: true}
	require.NoError(t, db.Create(&product).Error)
	fillCart(t, store, cartLine{product, 2})

	w := postCheckout(r, gin.H{"discount": 0})
	require.Equal(t, http.StatusCreated, w.Code)

	c, err := cart.Load(context.Background(), store, testSession)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCheckoutEmptyCart(t *testing.T) {
	r, _, _ := setupCheckoutRouter(t)

	w := postCheckout(r, gin.H{"discount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRejectsInvalidDiscount(t *testing.T) {
	r, db, store := setupCheckoutRouter(t)

	product := models.Product{ID: 1, Title: "Mug", Slug: "mug", Price: decimal.RequireFromString("10.00"), Available: true}
	require.NoError(t, db.Create(&product).Error)
	fillCart(t, store, cartLine{product, 1})

	w := postCheckout(r, gin.H{"discount": 120})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutLinksUserAndAddress(t *testing.T) {
	r, db, store := setupCheckoutRouter(t)

	user := models.User{Name: "Ivan", Email: "ivan@example.com"}
	require.NoError(t, db.Create(&user).Error)
	address, err := models.CreateDefaultShippingAddress(db, &user)
	require.NoError(t, err)

	product := models.Product{ID: 1, Title: "Mug", Slug: "mug", Price: decimal.RequireFromString("10.00"), Available: true}
	require.NoError(t, db.Create(&product).Error)
	fillCart(t, store, cartLine{product, 1})

	w := postCheckout(r, gin.H{
		"discount":            0,
		"user_id":             user.ID,
		"shipping_address_id": address.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	require.NotNil(t, order.UserID)
	assert.Equal(t, user.ID, *order.UserID)
	require.NotNil(t, order.ShippingAddressID)
	assert.Equal(t, address.ID, *order.ShippingAddressID)
}
