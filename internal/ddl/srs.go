package ddl

import (
	"strconv"
	"strings"
)

// epsgAuthority is the only spatial reference authority with numeric codes
const epsgAuthority = "EPSG"

// ResolveSRS returns the numeric spatial reference code for an authority and
// identifier pair. ok is false when either value is empty, the authority is
// not EPSG (any case), or the identifier is not an integer.
func ResolveSRS(authority, identifier string) (code int, ok bool) {
	if authority == "" || identifier == "" {
		return 0, false
	}
	if !strings.EqualFold(authority, epsgAuthority) {
		return 0, false
	}

	code, err := strconv.Atoi(identifier)
	if err != nil {
		return 0, false
	}
	return code, true
}
