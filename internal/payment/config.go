package payment

// Config хранит настройки платёжного шлюза Razorpay.
type Config struct {
	KeyID     string // идентификатор ключа (выдаёт Razorpay)
	KeySecret string // секрет для basic auth и подписи HMAC-SHA256
	APIUrl    string // адрес API шлюза
	Amount    int64  // фиксированная цена в минорных единицах (пайсах)
	Currency  string
}

// NewConfig создаёт конфигурацию шлюза.
func NewConfig(keyID, keySecret, apiURL string, amount int64, currency string) *Config {
	return &Config{
		KeyID:     keyID,
		KeySecret: keySecret,
		APIUrl:    apiURL,
		Amount:    amount,
		Currency:  currency,
	}
}

// GetOrdersURL возвращает endpoint создания ордеров.
func (c *Config) GetOrdersURL() string {
	return c.APIUrl + "/v1/orders"
}
