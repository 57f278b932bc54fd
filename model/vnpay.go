package model

import "time"

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	BaseURL    string
	ReturnURL  string
	IPNURL     string
}

type PaymentRequest struct {
	Amount     int64     `json:"amount"` // đơn vị VND, chưa nhân 100
	OrderInfo  string    `json:"orderInfo"`
	TxnRef     string    `json:"txnRef"`
	IPAddr     string    `json:"ipAddr"`
	CreateDate time.Time `json:"-"` // zero value → lấy thời điểm hiện tại
}

type PaymentResponse struct {
	IsSuccess bool   `json:"isSuccess"`
	TxnRef    string `json:"txnRef"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
