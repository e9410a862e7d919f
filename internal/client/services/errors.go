package services

import "errors"

var (
	ErrContributionClosed = errors.New("updates are closed for this cat")
	ErrNotUploader        = errors.New("only the uploader can edit this listing")
	ErrPendingRequest     = errors.New("you already have a pending request for this cat")
	ErrOwnListing         = errors.New("you cannot apply for your own listing")
	ErrListingInactive    = errors.New("this listing is no longer active")
	ErrNotReceiver        = errors.New("only the listing owner can decide this request")
	ErrAlreadyDecided     = errors.New("this request has already been decided")
)
