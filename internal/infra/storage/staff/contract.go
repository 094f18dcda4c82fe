package staff

import (
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
