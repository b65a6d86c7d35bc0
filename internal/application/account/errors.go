package account

import "errors"

var ErrAdminNotConfigured = errors.New("account: admin username or password not configured")
