package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Order представляет платёжный ордер, созданный на стороне шлюза.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Gateway определяет контракт платёжного шлюза: создание ордера
// и проверка подписанного результата оплаты. За этим интерфейсом
// шлюз можно заменить, не трогая логику жизненного цикла признаний.
type Gateway interface {
	CreateOrder(ctx context.Context, proposalID string) (*Order, error)
	VerifyClaim(orderID, paymentID, signature string) bool
}

// Client реализует Gateway поверх HTTP API Razorpay.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient создаёт новый клиент шлюза.
func NewClient(config *Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateOrder создаёт ордер на фиксированную сумму.
// В receipt и notes уходит идентификатор признания: успешная оплата
// должна трассироваться ровно к одному черновику.
func (c *Client) CreateOrder(ctx context.Context, proposalID string) (*Order, error) {
	receipt := proposalID
	if len(receipt) > 30 {
		receipt = receipt[:30] // лимит длины receipt на стороне шлюза
	}

	requestBody := map[string]interface{}{
		"amount":   c.config.Amount,
		"currency": c.config.Currency,
		"receipt":  receipt,
		"notes": map[string]string{
			"proposalId": proposalID,
		},
	}

	bodyJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.GetOrdersURL(), bytes.NewReader(bodyJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.config.KeyID, c.config.KeySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, string(body))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("payment gateway returned empty order id")
	}

	return &order, nil
}

// VerifyClaim проверяет подпись результата оплаты.
func (c *Client) VerifyClaim(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, c.config.KeySecret)
}
