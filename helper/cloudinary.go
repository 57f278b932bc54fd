package helper

import (
	"log"

	"tutor_market/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary khởi tạo client upload ảnh khóa học / hồ sơ chứng nhận
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Không khởi tạo được Cloudinary: %v", err)
	}
	return cld
}
