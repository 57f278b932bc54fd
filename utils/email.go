package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// CertificateEmailData dữ liệu cho template email chứng nhận
type CertificateEmailData struct {
	FullName       string
	CourseName     string
	FinishedAt     string
	CertificateUrl string
}

// OtpEmailData dữ liệu cho template email kích hoạt tài khoản
type OtpEmailData struct {
	FullName string
	OtpCode  string
}

func sendMail(to, subject, tmplPath string, data any, embeds map[string][]byte) {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("Lỗi load template email: %v", err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("Lỗi render template email: %v", err)
		return
	}

	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	for name, content := range embeds {
		content := content
		m.Embed(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type":        {"image/png"},
			"Content-Disposition": {"inline"},
		}))
	}

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi email đến %s: %v", to, err)
	}
}

// SendOtpEmail gửi mã kích hoạt tài khoản (async)
func SendOtpEmail(to string, data OtpEmailData) {
	go sendMail(to, "Mã kích hoạt tài khoản TutorMarket", "templates/otp_email.html", data, nil)
}

// SendCertificateEmail gửi chứng nhận hoàn thành khóa học kèm QR (async)
func SendCertificateEmail(to string, data CertificateEmailData, qrPng []byte) {
	embeds := map[string][]byte{}
	if qrPng != nil {
		embeds["certificate_qr.png"] = qrPng
	}
	go sendMail(to, "Chứng nhận hoàn thành khóa học "+data.CourseName, "templates/certificate_email.html", data, embeds)
}
