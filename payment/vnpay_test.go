package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"tutor_market/model"

	"github.com/stretchr/testify/assert"
)

func newTestVNPay() *VNPay {
	return &VNPay{
		Config: model.VNPayConfig{
			TmnCode:    "TESTCODE",
			HashSecret: "supersecret",
			BaseURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
			ReturnURL:  "http://localhost:8002/vnpay/return",
		},
	}
}

func fixedRequest() model.PaymentRequest {
	return model.PaymentRequest{
		Amount:     100000,
		OrderInfo:  "Intro to Go",
		TxnRef:     "A1",
		IPAddr:     "127.0.0.1",
		CreateDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildPaymentUrl(t *testing.T) {
	v := newTestVNPay()

	t.Run("Deterministic with fixed create date", func(t *testing.T) {
		first, err := v.BuildPaymentUrl(fixedRequest())
		assert.NoError(t, err)
		second, err := v.BuildPaymentUrl(fixedRequest())
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Parameters are scaled, formatted and encoded", func(t *testing.T) {
		paymentUrl, err := v.BuildPaymentUrl(fixedRequest())
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(paymentUrl, v.Config.BaseURL+"?"))

		parsed, err := url.Parse(paymentUrl)
		assert.NoError(t, err)
		query := parsed.Query()

		assert.Equal(t, "10000000", query.Get("vnp_Amount")) // 100000 VND * 100
		assert.Equal(t, "20250101000000", query.Get("vnp_CreateDate"))
		assert.Equal(t, "20250101001500", query.Get("vnp_ExpireDate"))
		assert.Equal(t, "A1", query.Get("vnp_TxnRef"))
		assert.Equal(t, "VND", query.Get("vnp_CurrCode"))
		assert.Equal(t, "TESTCODE", query.Get("vnp_TmnCode"))
		assert.Equal(t, "127.0.0.1", query.Get("vnp_IpAddr"))
		assert.Equal(t, "Intro to Go", query.Get("vnp_OrderInfo"))

		// giá trị có khoảng trắng phải được percent-encode trong raw query
		assert.NotContains(t, parsed.RawQuery, "Intro to Go")
	})

	t.Run("Keys are sorted lexicographically", func(t *testing.T) {
		paymentUrl, err := v.BuildPaymentUrl(fixedRequest())
		assert.NoError(t, err)

		rawQuery := strings.SplitN(paymentUrl, "?", 2)[1]
		keys := []string{}
		for _, pair := range strings.Split(rawQuery, "&") {
			keys = append(keys, strings.SplitN(pair, "=", 2)[0])
		}
		assert.True(t, sort.StringsAreSorted(keys), "query keys must be sorted: %v", keys)
	})

	t.Run("Secure hash is reproducible from the canonical query", func(t *testing.T) {
		paymentUrl, err := v.BuildPaymentUrl(fixedRequest())
		assert.NoError(t, err)

		rawQuery := strings.SplitN(paymentUrl, "?", 2)[1]
		parts := strings.SplitN(rawQuery, "&vnp_SecureHash=", 2)
		assert.Len(t, parts, 2)
		canonical, gotHash := parts[0], parts[1]

		h := hmac.New(sha512.New, []byte(v.Config.HashSecret))
		h.Write([]byte(canonical))
		assert.Equal(t, hex.EncodeToString(h.Sum(nil)), gotHash)
	})

	t.Run("Missing client IP falls back to loopback", func(t *testing.T) {
		req := fixedRequest()
		req.IPAddr = ""
		paymentUrl, err := v.BuildPaymentUrl(req)
		assert.NoError(t, err)

		parsed, _ := url.Parse(paymentUrl)
		assert.Equal(t, "127.0.0.1", parsed.Query().Get("vnp_IpAddr"))
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		req := fixedRequest()
		req.Amount = -1
		_, err := v.BuildPaymentUrl(req)
		assert.Error(t, err)
	})
}

func TestVerifyReturnUrl(t *testing.T) {
	v := newTestVNPay()

	buildCallback := func(responseCode string) url.Values {
		query := url.Values{}
		query.Add("vnp_Amount", "10000000")
		query.Add("vnp_ResponseCode", responseCode)
		query.Add("vnp_TxnRef", "A1")
		query.Add("vnp_SecureHash", v.generateHash(url.Values{
			"vnp_Amount":       {"10000000"},
			"vnp_ResponseCode": {responseCode},
			"vnp_TxnRef":       {"A1"},
		}.Encode()))
		return query
	}

	t.Run("Valid success callback", func(t *testing.T) {
		result := v.VerifyReturnUrl(buildCallback("00"))
		assert.True(t, result.IsSuccess)
		assert.Equal(t, "A1", result.TxnRef)
		assert.Equal(t, int64(100000), result.Amount)
	})

	t.Run("Failed response code", func(t *testing.T) {
		result := v.VerifyReturnUrl(buildCallback("24"))
		assert.False(t, result.IsSuccess)
	})

	t.Run("Tampered hash", func(t *testing.T) {
		query := buildCallback("00")
		query.Set("vnp_Amount", "999")
		result := v.VerifyReturnUrl(query)
		assert.False(t, result.IsSuccess)
		assert.Equal(t, "Invalid hash", result.Message)
	})
}
