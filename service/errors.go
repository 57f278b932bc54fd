package service

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrCourseNotFound        = errors.New("course not found or inactive")
	ErrAccountNotFound       = errors.New("account not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderNotPayable       = errors.New("order already in a terminal status")
	ErrDetailNotFound        = errors.New("order detail not found")
	ErrDetailAlreadyFinished = errors.New("course already marked finished")
	ErrOrderNotCompleted     = errors.New("order is not completed")
	ErrInvalidYear           = errors.New("year out of range")
)
