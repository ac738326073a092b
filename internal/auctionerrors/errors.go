package auctionerrors

import "errors"

// Error kinds shared by all operations. Callers match with errors.Is; the
// wrapping message carries the relevant identifier.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStorage      = errors.New("storage failure")
)

// Bidding rule errors
var (
	ErrRoomClosed = errors.New("bidding room is closed")
	ErrBidTooLow  = errors.New("bid amount too low")
	ErrSelfBid    = errors.New("owner cannot bid on own product")
	ErrNoBids     = errors.New("no bids placed in room")
)
