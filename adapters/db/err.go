package db

import (
	"github.com/rendau/rester/resterErrs"
)

// ErrNoRows is returned by adapters when a query matched nothing.
const ErrNoRows = resterErrs.Err("no_rows")
