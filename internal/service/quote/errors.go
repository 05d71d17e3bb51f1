package quote

import "errors"

var ErrConflict = errors.New("quote reference already exists")
