package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"tutor_market/constants"
	"tutor_market/helper"
	"tutor_market/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateSignature ký tham số upload để client đẩy thẳng lên Cloudinary
func GenerateSignature(c *fiber.Ctx) error {
	_, account, isAdmin, isTutor := helper.GetInfoAccountFromToken(c)
	if account == nil || (!isAdmin && !isTutor) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_TUTOR, nil)
	}

	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // Parse but don't sign
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Params không hợp lệ", err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	// Collect signable parameters as map (exclude resource_type, api_key, etc.)
	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder // Raw value, no escape
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID // Raw value
	}
	paramMap["timestamp"] = timestampStr // Always include

	// Sort keys alphabetically
	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Build stringToSign manually (raw values, no URL encoding)
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	// Compute SHA1 hash
	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadImage up ảnh qua server, dùng cho hồ sơ chứng nhận
func UploadImage(c *fiber.Ctx) error {
	_, account, _, _ := helper.GetInfoAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu file upload", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không đọc được file", err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder: "tutor_market",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"url":      result.SecureURL,
		"publicId": result.PublicID,
	})
}
