package asset

import "errors"

var (
	ErrAssetNotFound    = errors.New("asset not found")
	ErrAssetTagExists   = errors.New("asset tag already exists")
	ErrAlreadyAssigned  = errors.New("asset is already assigned")
	ErrNotAssigned      = errors.New("asset is not assigned")
	ErrAssetUnavailable = errors.New("asset is not available for assignment")
)
