package recruitment

import "errors"

var ErrPostingNotFound = errors.New("job posting not found")
