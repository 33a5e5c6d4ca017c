package entity

import "errors"

var (
	// Catalog errors
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownColor   = errors.New("unknown color for product")
	ErrUnknownSize    = errors.New("size not available for color")
	ErrUnknownRegion  = errors.New("unknown shipping region")

	// Design errors
	ErrSessionNotFound  = errors.New("design session not found")
	ErrUnknownSide      = errors.New("side must be front or back")
	ErrUnknownDirection = errors.New("unknown alignment direction")
	ErrUndecodableImage = errors.New("file is not a decodable image")
	ErrImageTooLarge    = errors.New("image dimensions exceed the upload limit")
	ErrUploadSuperseded = errors.New("upload superseded by a newer upload or clear")

	// Order errors
	ErrOrderNotFound              = errors.New("order not found")
	ErrInvalidQuantity            = errors.New("quantity must be at least 1")
	ErrDesignConfirmationRequired = errors.New("order has no design; confirmation required")
	ErrDeliveryFailed             = errors.New("order delivery failed")
)
