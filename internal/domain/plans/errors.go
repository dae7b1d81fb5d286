package plans

import "errors"

var ErrPlanNotFound = errors.New("plan not found")
