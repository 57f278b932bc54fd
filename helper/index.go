package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"tutor_market/constants"
	"tutor_market/database"
	"tutor_market/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByEmail(e string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Email: e}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoAccountFromToken trả về claim, account trong DB và 2 cờ quyền.
// Account nil nghĩa là token không hợp lệ hoặc account đã bị xóa.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, *model.Account, bool, bool) {
	u := c.Locals("user")
	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil, false, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil, false, false
	}

	accountIdFloat, _ := claims["accountId"].(float64)
	email, _ := claims["email"].(string)
	tokenClaim := model.TokenClaim{
		AccountId: uint(accountIdFloat),
		Email:     email,
	}
	if tokenClaim.AccountId == 0 {
		return tokenClaim, nil, false, false
	}

	var account model.Account
	db := database.DB
	if err := db.First(&account, tokenClaim.AccountId).Error; err != nil {
		log.Printf("Account not found: id=%d, error=%v", tokenClaim.AccountId, err)
		return tokenClaim, nil, false, false
	}

	return tokenClaim,
		&account,
		account.Role == constants.ROLE_ADMIN,
		account.Role == constants.ROLE_TUTOR
}
