package constants

// Roles
const (
	ROLE_ADMIN = "ADMIN"
	ROLE_TUTOR = "TUTOR"
	ROLE_USER  = "USER"
)

// Order status
const (
	ORDER_PENDING   = "PENDING"
	ORDER_COMPLETED = "COMPLETED"
	ORDER_CANCELLED = "CANCELLED"
)

// Certification status
const (
	CERT_PENDING  = "PENDING"
	CERT_APPROVED = "APPROVED"
	CERT_REJECTED = "REJECTED"
)

// Payment methods
const (
	PAYMENT_VNPAY = "VNPay"
	PAYMENT_MOMO  = "Momo"
)

// Messages
const (
	NOT_ADMIN                   = "Bạn không có quyền thực hiện thao tác này"
	NOT_TUTOR                   = "Chỉ gia sư đã duyệt mới được thực hiện thao tác này"
	MISSING_LOGIN_INPUT         = "Thiếu email hoặc mật khẩu"
	EMAIL_INVALID               = "Email không đúng định dạng"
	EMAIL_ALREADY_EXISTS        = "Email đã được đăng ký"
	OTP_INVALID                 = "Mã OTP không đúng hoặc đã hết hạn"
	INVALID_EMAIL               = "Email không tồn tại"
	INVALID_PASSWORD            = "Mật khẩu không đúng"
	ACCOUNT_NOT_ACTIVE          = "Tài khoản chưa được kích hoạt"
	CAN_NOT_HASH_PASSWORD       = "Không thể mã hóa mật khẩu"
	ERROR_INTERNAL_ERROR        = "Lỗi hệ thống, vui lòng thử lại sau"
	ERROR_PARSE_DATA_TO_LOCALS  = "Không đọc được dữ liệu đã xác thực"
	ERROR_INPUT                 = "Dữ liệu truyền vào không hợp lệ"
	NOT_FOUND_RECORDS           = "Không tìm thấy bản ghi"
	ERROR_CREATE                = "Tạo mới thất bại"
	ERROR_UPDATE                = "Cập nhật thất bại"
	DATA_INPUT_IS_NOT_NUMBER    = "Dữ liệu truyền vào phải là số"
	COURSE_NOT_FOUND            = "Khóa học không tồn tại hoặc đã ngừng mở bán"
	ACCOUNT_NOT_FOUND           = "Tài khoản không tồn tại"
	ORDER_NOT_FOUND             = "Đơn hàng không tồn tại"
	ORDER_ALREADY_COMPLETED     = "Đơn hàng đã được thanh toán trước đó"
	ORDER_CANCELLED_MESSAGE     = "Đơn hàng đã bị hủy, không thể thanh toán"
	YEAR_INVALID                = "Năm thống kê không hợp lệ"
	NO_TOP_PERFORMER            = "Chưa có dữ liệu thống kê"
	FEEDBACK_NOT_ALLOWED        = "Bạn cần hoàn thành khóa học trước khi đánh giá"
	CERT_ALREADY_SUBMITTED      = "Bạn đã gửi hồ sơ chứng nhận, vui lòng chờ duyệt"
	DETAIL_NOT_FOUND            = "Không tìm thấy khóa học trong đơn hàng"
	DETAIL_ALREADY_FINISHED     = "Khóa học đã được đánh dấu hoàn thành trước đó"
	ORDER_NOT_COMPLETED_MESSAGE = "Đơn hàng chưa thanh toán, không thể hoàn thành khóa học"
)
