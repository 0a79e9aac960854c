package model

// PaymentOrderRequest представляет запрос на создание платёжного ордера.
type PaymentOrderRequest struct {
	ProposalID string `json:"proposalId"`
}

// PaymentOrderResponse представляет ответ с данными ордера для виджета оплаты.
type PaymentOrderResponse struct {
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	ProposalID string `json:"proposalId"`
}

// VerifyPaymentRequest представляет подписанный результат оплаты,
// который виджет возвращает после чекаута.
type VerifyPaymentRequest struct {
	OrderID    string `json:"razorpay_order_id"`
	PaymentID  string `json:"razorpay_payment_id"`
	Signature  string `json:"razorpay_signature"`
	ProposalID string `json:"proposalId"`
}

// VerifyPaymentResponse представляет результат проверки оплаты.
// ShareURL — готовая публичная ссылка на опубликованное признание.
type VerifyPaymentResponse struct {
	Success  bool   `json:"success"`
	Slug     string `json:"slug"`
	ShareURL string `json:"shareUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}
